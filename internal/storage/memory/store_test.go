package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

func seedJobs(t *testing.T, s *Store, jobs ...domain.Job) []string {
	t.Helper()
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		res, err := s.InsertJob(context.Background(), j)
		require.NoError(t, err)
		ids = append(ids, res.InsertedID)
	}
	return ids
}

func titles(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestFindJobsLocationSearchIsCaseInsensitive(t *testing.T) {
	s := New()
	seedJobs(t, s,
		domain.Job{Title: "a", Location: "nyc-office"},
		domain.Job{Title: "b", Location: "NYC-Office"},
		domain.Job{Title: "c", Location: "Boston"},
	)

	jobs, err := s.FindJobs(context.Background(), repository.Query{
		Filter: repository.Where(repository.ContainsFold(repository.FieldLocation, "NYC")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(jobs))
}

func TestFindJobsSearchIsLiteral(t *testing.T) {
	s := New()
	seedJobs(t, s,
		domain.Job{Title: "a", Location: "Remote (US)"},
		domain.Job{Title: "b", Location: "Remote US"},
	)

	jobs, err := s.FindJobs(context.Background(), repository.Query{
		Filter: repository.Where(repository.ContainsFold(repository.FieldLocation, "(us)")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(jobs))
}

func TestFindJobsSalaryBoundsAndSort(t *testing.T) {
	s := New()
	seedJobs(t, s,
		domain.Job{Title: "low", SalaryRange: &domain.SalaryRange{Min: 30000, Max: 40000}},
		domain.Job{Title: "mid", SalaryRange: &domain.SalaryRange{Min: 50000, Max: 80000}},
		domain.Job{Title: "high", SalaryRange: &domain.SalaryRange{Min: 70000, Max: 90000}},
		domain.Job{Title: "over", SalaryRange: &domain.SalaryRange{Min: 60000, Max: 120000}},
	)

	ctx := context.Background()
	filter := repository.Where(
		repository.Gte(repository.FieldSalaryMin, 50000),
		repository.Lte(repository.FieldSalaryMax, 90000),
	)

	jobs, err := s.FindJobs(ctx, repository.Query{Filter: filter})
	require.NoError(t, err)
	assert.Equal(t, []string{"mid", "high"}, titles(jobs))

	jobs, err = s.FindJobs(ctx, repository.Query{
		Sort: &repository.Sort{Field: repository.FieldSalaryMin, Descending: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "over", "mid", "low"}, titles(jobs))
}

func TestFindJobsSkipsJobsWithoutSalaryRange(t *testing.T) {
	s := New()
	seedJobs(t, s,
		domain.Job{Title: "volunteer"},
		domain.Job{Title: "paid", SalaryRange: &domain.SalaryRange{Min: 0, Max: 1000}},
	)

	ctx := context.Background()
	jobs, err := s.FindJobs(ctx, repository.Query{Filter: repository.Where(
		repository.Gte(repository.FieldSalaryMin, 0),
		repository.Lte(repository.FieldSalaryMax, 1000),
	)})
	require.NoError(t, err)
	assert.Equal(t, []string{"paid"}, titles(jobs))

	jobs, err = s.FindJobs(ctx, repository.Query{
		Sort: &repository.Sort{Field: repository.FieldSalaryMin, Descending: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"paid", "volunteer"}, titles(jobs))

	j, err := s.FindJob(ctx, jobs[1].ID)
	require.NoError(t, err)
	assert.Nil(t, j.SalaryRange)
}

func TestFindJobsCombinedClauses(t *testing.T) {
	s := New()
	seedJobs(t, s,
		domain.Job{Title: "match", HREmail: "hr@x.com", Category: "Eng"},
		domain.Job{Title: "wrong-category", HREmail: "hr@x.com", Category: "Sales"},
		domain.Job{Title: "wrong-email", HREmail: "x@y.com", Category: "Eng"},
	)

	jobs, err := s.FindJobs(context.Background(), repository.Query{
		Filter: repository.Where(
			repository.Eq(repository.FieldHREmail, "hr@x.com"),
			repository.Eq(repository.FieldCategory, "Eng"),
		),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"match"}, titles(jobs))
}

func TestFindJobsLatestOrderWithTies(t *testing.T) {
	s := New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedJobs(t, s,
		domain.Job{Title: "first", CreatedAt: at},
		domain.Job{Title: "second", CreatedAt: at},
		domain.Job{Title: "third", CreatedAt: at.Add(time.Second)},
	)

	jobs, err := s.FindJobs(context.Background(), repository.Query{
		Sort:  &repository.Sort{Field: repository.FieldCreatedAt, Descending: true},
		Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, titles(jobs))
}

func TestFindJobReturnsCopy(t *testing.T) {
	s := New()
	ids := seedJobs(t, s, domain.Job{Title: "a", Requirements: []string{"Go"}})

	j, err := s.FindJob(context.Background(), ids[0])
	require.NoError(t, err)
	j.Requirements[0] = "mutated"

	again, err := s.FindJob(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Requirements)

	_, err = s.FindJob(context.Background(), domain.NewID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIncrementApplicationCountConcurrent(t *testing.T) {
	s := New()
	ids := seedJobs(t, s, domain.Job{Title: "a"})
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.IncrementApplicationCount(ctx, ids[0])
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	j, err := s.FindJob(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, n, j.ApplicationCount)

	_, err = s.IncrementApplicationCount(ctx, domain.NewID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplicationLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()
	jobID := domain.NewID()

	res, err := s.InsertApplication(ctx, domain.JobApplication{
		JobID:          jobID,
		ApplicantEmail: "a@x.com",
		Status:         "pending",
		JobSnapshot:    &domain.JobSnapshot{Title: "not stored"},
	})
	require.NoError(t, err)
	_, err = s.InsertApplication(ctx, domain.JobApplication{JobID: jobID, ApplicantEmail: "b@x.com"})
	require.NoError(t, err)

	mine, err := s.FindApplications(ctx, repository.Where(repository.Eq(repository.FieldApplicant, "a@x.com")))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Nil(t, mine[0].JobSnapshot)

	forJob, err := s.FindApplications(ctx, repository.Where(repository.Eq(repository.FieldJobID, jobID)))
	require.NoError(t, err)
	assert.Len(t, forJob, 2)

	upd, err := s.UpdateApplicationStatus(ctx, res.InsertedID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, upd)

	upd, err = s.UpdateApplicationStatus(ctx, res.InsertedID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, upd)

	del, err := s.DeleteApplication(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = s.DeleteApplication(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Zero(t, del.DeletedCount)

	upd, err = s.UpdateApplicationStatus(ctx, res.InsertedID, "rejected")
	require.NoError(t, err)
	assert.Zero(t, upd.MatchedCount)
}
