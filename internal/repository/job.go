package repository

import (
	"context"
	"errors"

	"github.com/honeycarbs/jobnest/internal/domain"
)

var (
	// ErrNotFound is returned when a document lookup matches nothing
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned for identifiers that are not well formed
	ErrInvalidID = errors.New("invalid identifier")
)

// JobRepository defines the storage operations on the jobs collection
type JobRepository interface {
	FindJobs(ctx context.Context, q Query) ([]domain.Job, error)
	FindJob(ctx context.Context, id domain.JobID) (domain.Job, error)
	InsertJob(ctx context.Context, job domain.Job) (domain.InsertResult, error)
	// IncrementApplicationCount atomically adds one to the job's
	// applicationCount, treating an absent value as zero, and returns the
	// new count.
	IncrementApplicationCount(ctx context.Context, id domain.JobID) (int, error)
}

// ApplicationRepository defines the storage operations on the job
// applications collection
type ApplicationRepository interface {
	FindApplications(ctx context.Context, f Filter) ([]domain.JobApplication, error)
	InsertApplication(ctx context.Context, app domain.JobApplication) (domain.InsertResult, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (domain.UpdateResult, error)
	DeleteApplication(ctx context.Context, id string) (domain.DeleteResult, error)
}
