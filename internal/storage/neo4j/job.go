package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"

	pkgneo4j "github.com/honeycarbs/jobnest/pkg/neo4j"
)

// Ensure JobRepository implements repository.JobRepository
var _ repository.JobRepository = (*JobRepository)(nil)

// JobRepository implements repository.JobRepository with Neo4j
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

// FindJobs runs a filtered, optionally sorted job query
func (r *JobRepository) FindJobs(ctx context.Context, q repository.Query) ([]domain.Job, error) {
	query, params, err := matchQuery("Job", "j", q)
	if err != nil {
		return nil, err
	}

	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(records))
	for _, record := range records {
		if node, ok := nodeFrom(record, "j"); ok {
			jobs = append(jobs, parseJobNode(node))
		}
	}
	return jobs, nil
}

// FindJob loads a single job by ID
func (r *JobRepository) FindJob(ctx context.Context, id domain.JobID) (domain.Job, error) {
	records, err := r.read(ctx, `MATCH (j:Job {id: $id}) RETURN j`, map[string]any{"id": id})
	if err != nil {
		return domain.Job{}, fmt.Errorf("failed to query job: %w", err)
	}
	if len(records) == 0 {
		return domain.Job{}, repository.ErrNotFound
	}

	node, ok := nodeFrom(records[0], "j")
	if !ok {
		return domain.Job{}, repository.ErrNotFound
	}
	return parseJobNode(node), nil
}

// InsertJob creates a Job node
func (r *JobRepository) InsertJob(ctx context.Context, job domain.Job) (domain.InsertResult, error) {
	if job.ID == "" {
		job.ID = domain.NewID()
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (j:Job)
		SET j = $props,
		    j.createdAt = datetime({epochMillis: $createdAt})
	`

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{
			"props":     jobProps(job),
			"createdAt": job.CreatedAt.UnixMilli(),
		})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("failed to create job: %w", err)
	}

	return domain.InsertResult{Acknowledged: true, InsertedID: job.ID}, nil
}

// IncrementApplicationCount bumps applicationCount inside a single write
// statement. Neo4j takes the node write lock before evaluating the SET
// expression, so concurrent increments are not lost.
func (r *JobRepository) IncrementApplicationCount(ctx context.Context, id domain.JobID) (int, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (j:Job {id: $id})
		SET j.applicationCount = coalesce(j.applicationCount, 0) + 1
		RETURN j.applicationCount AS count
	`

	out, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment application count: %w", err)
	}

	records := out.([]*neo4j.Record)
	if len(records) == 0 {
		return 0, repository.ErrNotFound
	}
	count, _ := records[0].Get("count")
	n, _ := count.(int64)
	return int(n), nil
}

func (r *JobRepository) read(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	return readRecords(ctx, r.client, query, params)
}

func readRecords(ctx context.Context, client *pkgneo4j.Client, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out.([]*neo4j.Record), nil
}
