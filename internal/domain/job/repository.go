package job

import (
	"context"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

// Repository persists and loads jobs from storage
type Repository interface {
	// FindJobs returns jobs matching the query in store order
	FindJobs(ctx context.Context, q repository.Query) ([]domain.Job, error)

	// FindJob loads one job or returns repository.ErrNotFound
	FindJob(ctx context.Context, id domain.JobID) (domain.Job, error)

	// InsertJob stores a new job and reports the assigned identifier
	InsertJob(ctx context.Context, job domain.Job) (domain.InsertResult, error)
}
