package application

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// Service handles job application submissions and listings
type Service struct {
	repo       Repository
	aggregator *Aggregator
	counter    *Counter
	recorder   Recorder
	logger     *logging.Logger
	clock      func() time.Time
}

// Jobs is the job store view the application service needs
type Jobs interface {
	JobLookup
	JobCounter
}

// Recorder observes stored applications and whether the job's count followed
type Recorder interface {
	ApplicationSubmitted(countUpdated bool)
}

type nopRecorder struct{}

func (nopRecorder) ApplicationSubmitted(bool) {}

// NewService creates an application service. A nil recorder records nothing.
func NewService(repo Repository, jobs Jobs, recorder Recorder, logger *logging.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("application.Service: repository is required")
	}
	if jobs == nil {
		return nil, fmt.Errorf("application.Service: job store is required")
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &Service{
		repo:       repo,
		aggregator: NewAggregator(jobs, logger),
		counter:    NewCounter(jobs),
		recorder:   recorder,
		logger:     logger,
		clock:      time.Now,
	}, nil
}

// ListForApplicant returns the applicant's applications with job details attached
func (s *Service) ListForApplicant(ctx context.Context, email string) ([]domain.JobApplication, error) {
	apps, err := s.repo.FindApplications(ctx, repository.Where(repository.Eq(repository.FieldApplicant, email)))
	if err != nil {
		return nil, fmt.Errorf("find applications of %s: %w", email, err)
	}
	return s.aggregator.Enrich(ctx, apps)
}

// ListForJob returns the raw applications submitted against a job. The id is
// matched in canonical form, the same form Submit stores.
func (s *Service) ListForJob(ctx context.Context, rawJobID string) ([]domain.JobApplication, error) {
	jobID, err := repository.ParseID(rawJobID)
	if err != nil {
		return nil, err
	}

	apps, err := s.repo.FindApplications(ctx, repository.Where(repository.Eq(repository.FieldJobID, jobID)))
	if err != nil {
		return nil, fmt.Errorf("find applications for job %s: %w", jobID, err)
	}
	return apps, nil
}

// Submit stores a new application and then bumps the job's application
// count. A failed count update is logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, app domain.JobApplication) (domain.InsertResult, error) {
	jobID, err := repository.ParseID(app.JobID)
	if err != nil {
		return domain.InsertResult{}, err
	}

	app.ID = domain.NewID()
	app.JobID = jobID
	app.CreatedAt = s.clock().UTC()
	app.JobSnapshot = nil

	res, err := s.repo.InsertApplication(ctx, app)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert application: %w", err)
	}

	count, err := s.counter.Increment(ctx, jobID)
	if err != nil {
		s.recorder.ApplicationSubmitted(false)
		s.logger.Warn("application count not updated",
			"application_id", res.InsertedID,
			"job_id", jobID,
			"err", err,
		)
		return res, nil
	}

	s.recorder.ApplicationSubmitted(true)
	s.logger.Info("application submitted",
		"application_id", res.InsertedID,
		"job_id", jobID,
		"application_count", count,
	)
	return res, nil
}

// UpdateStatus sets the status field of an application
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (domain.UpdateResult, error) {
	appID, err := repository.ParseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := s.repo.UpdateApplicationStatus(ctx, appID, status)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update application %s: %w", appID, err)
	}
	return res, nil
}

// Delete removes an application. The job's application count is left as is.
func (s *Service) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	appID, err := repository.ParseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	res, err := s.repo.DeleteApplication(ctx, appID)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete application %s: %w", appID, err)
	}
	return res, nil
}
