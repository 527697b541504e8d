package application

import (
	"context"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

// Repository persists job applications
type Repository interface {
	FindApplications(ctx context.Context, f repository.Filter) ([]domain.JobApplication, error)
	InsertApplication(ctx context.Context, app domain.JobApplication) (domain.InsertResult, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (domain.UpdateResult, error)
	DeleteApplication(ctx context.Context, id string) (domain.DeleteResult, error)
}

// JobLookup loads the job an application refers to
type JobLookup interface {
	FindJob(ctx context.Context, id domain.JobID) (domain.Job, error)
}

// JobCounter bumps the stored application count of a job
type JobCounter interface {
	IncrementApplicationCount(ctx context.Context, id domain.JobID) (int, error)
}
