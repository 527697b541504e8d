package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"

	pkgneo4j "github.com/honeycarbs/jobnest/pkg/neo4j"
)

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository stores job applications as JobApplication nodes.
// The job reference is a plain job_id property, not a relationship.
type ApplicationRepository struct {
	client *pkgneo4j.Client
}

// NewApplicationRepository creates an ApplicationRepository
func NewApplicationRepository(client *pkgneo4j.Client) *ApplicationRepository {
	return &ApplicationRepository{client: client}
}

// FindApplications returns the applications matching the filter in creation order
func (r *ApplicationRepository) FindApplications(ctx context.Context, f repository.Filter) ([]domain.JobApplication, error) {
	query, params, err := matchQuery("JobApplication", "a", repository.Query{Filter: f})
	if err != nil {
		return nil, err
	}

	records, err := readRecords(ctx, r.client, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}

	apps := make([]domain.JobApplication, 0, len(records))
	for _, record := range records {
		if node, ok := nodeFrom(record, "a"); ok {
			apps = append(apps, parseApplicationNode(node))
		}
	}
	return apps, nil
}

// InsertApplication creates a JobApplication node
func (r *ApplicationRepository) InsertApplication(ctx context.Context, app domain.JobApplication) (domain.InsertResult, error) {
	if app.ID == "" {
		app.ID = domain.NewID()
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (a:JobApplication)
		SET a = $props,
		    a.createdAt = datetime({epochMillis: $createdAt})
	`

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{
			"props":     applicationProps(app),
			"createdAt": app.CreatedAt.UnixMilli(),
		})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("failed to create application: %w", err)
	}

	return domain.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

// UpdateApplicationStatus sets the status property of one application
func (r *ApplicationRepository) UpdateApplicationStatus(ctx context.Context, id, status string) (domain.UpdateResult, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (a:JobApplication {id: $id})
		WITH a, coalesce(a.status <> $status, true) AS changed
		SET a.status = $status
		RETURN changed
	`

	out, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"id": id, "status": status})
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	})
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("failed to update application: %w", err)
	}

	res := domain.UpdateResult{Acknowledged: true}
	for _, record := range out.([]*neo4j.Record) {
		res.MatchedCount++
		if changed, _ := record.Get("changed"); changed == true {
			res.ModifiedCount++
		}
	}
	return res, nil
}

// DeleteApplication removes one application node
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id string) (domain.DeleteResult, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	out, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `MATCH (a:JobApplication {id: $id}) DELETE a`, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("failed to delete application: %w", err)
	}

	summary := out.(neo4j.ResultSummary)
	return domain.DeleteResult{
		Acknowledged: true,
		DeletedCount: int64(summary.Counters().NodesDeleted()),
	}, nil
}
