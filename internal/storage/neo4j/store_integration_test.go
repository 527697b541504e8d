package neo4j

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
	pkgneo4j "github.com/honeycarbs/jobnest/pkg/neo4j"
)

func TestRepositoriesIntegration(t *testing.T) {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD must be set to run this test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := pkgneo4j.NewClient(ctx, pkgneo4j.Config{
		URI:      uri,
		Username: os.Getenv("NEO4J_USERNAME"),
		Password: os.Getenv("NEO4J_PASSWORD"),
	})
	require.NoError(t, err)
	defer func() { _ = client.Close(context.Background()) }()
	require.NoError(t, client.EnsureSchema(ctx))

	jobs := NewJobRepository(client)
	apps := NewApplicationRepository(client)

	// a unique employer email keeps runs against a shared database apart
	hr := "hr+" + domain.NewID() + "@x.com"
	res, err := jobs.InsertJob(ctx, domain.Job{
		ID:           domain.NewID(),
		Title:        "Engineer",
		Location:     "NYC-Office",
		HREmail:      hr,
		SalaryRange:  &domain.SalaryRange{Min: 50000, Max: 90000, Currency: "usd"},
		Requirements: []string{"Go", "Cypher"},
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	found, err := jobs.FindJobs(ctx, repository.Query{Filter: repository.Where(
		repository.Eq(repository.FieldHREmail, hr),
		repository.ContainsFold(repository.FieldLocation, "nyc"),
		repository.Gte(repository.FieldSalaryMin, 50000),
		repository.Lte(repository.FieldSalaryMax, 90000),
	)})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, res.InsertedID, found[0].ID)
	assert.Equal(t, []string{"Go", "Cypher"}, found[0].Requirements)
	assert.Equal(t, "usd", found[0].SalaryRange.Currency)

	for i := 1; i <= 3; i++ {
		n, err := jobs.IncrementApplicationCount(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	_, err = jobs.IncrementApplicationCount(ctx, domain.NewID())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	appRes, err := apps.InsertApplication(ctx, domain.JobApplication{
		ID:             domain.NewID(),
		JobID:          res.InsertedID,
		ApplicantEmail: hr,
		Status:         "pending",
		CreatedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	upd, err := apps.UpdateApplicationStatus(ctx, appRes.InsertedID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, upd)

	list, err := apps.FindApplications(ctx, repository.Where(repository.Eq(repository.FieldJobID, res.InsertedID)))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "accepted", list[0].Status)

	del, err := apps.DeleteApplication(ctx, appRes.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}
