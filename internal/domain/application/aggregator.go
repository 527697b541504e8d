package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// Aggregator copies presentation fields of the referenced job onto each
// application. Lookups run one at a time, one per application.
type Aggregator struct {
	jobs   JobLookup
	logger *logging.Logger
}

// NewAggregator creates an Aggregator
func NewAggregator(jobs JobLookup, logger *logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Aggregator{jobs: jobs, logger: logger}
}

// Enrich returns the applications with job details attached where the job
// exists. Applications whose job is missing are returned unchanged.
func (a *Aggregator) Enrich(ctx context.Context, apps []domain.JobApplication) ([]domain.JobApplication, error) {
	out := make([]domain.JobApplication, 0, len(apps))

	for _, app := range apps {
		app.JobSnapshot = nil

		jobID, err := repository.ParseID(app.JobID)
		if err != nil {
			a.logger.Debug("application references malformed job id", "application_id", app.ID, "job_id", app.JobID)
			out = append(out, app)
			continue
		}

		job, err := a.jobs.FindJob(ctx, jobID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			a.logger.Debug("application references missing job", "application_id", app.ID, "job_id", jobID)
		case err != nil:
			return nil, fmt.Errorf("find job %s for application %s: %w", jobID, app.ID, err)
		default:
			app.JobSnapshot = domain.SnapshotOf(job)
		}

		out = append(out, app)
	}

	return out, nil
}
