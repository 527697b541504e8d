package job

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// LatestLimit is how many jobs the latest-jobs listing returns
const LatestLimit = 8

type Service interface {
	List(ctx context.Context, params QueryParams) ([]domain.Job, error)
	Get(ctx context.Context, id string) (domain.Job, error)
	Latest(ctx context.Context) ([]domain.Job, error)
	Create(ctx context.Context, job domain.Job) (domain.InsertResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	repo   Repository
	logger *logging.Logger
	clock  func() time.Time
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("job.Service: repository is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.Nop()
	}

	return &service{
		repo:   cfg.repo,
		logger: cfg.logger,
		clock:  cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository, logger *logging.Logger) (Service, error) {
	return NewService(WithRepository(repo), WithLogger(logger))
}

type service struct {
	repo   Repository
	logger *logging.Logger
	clock  func() time.Time
}

// List returns the jobs matching the listing parameters
func (s *service) List(ctx context.Context, params QueryParams) ([]domain.Job, error) {
	q, err := BuildQuery(params)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listing jobs", "clauses", len(q.Filter.Clauses), "sorted", q.Sort != nil)

	jobs, err := s.repo.FindJobs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	return jobs, nil
}

// Get loads a job by identifier
func (s *service) Get(ctx context.Context, id string) (domain.Job, error) {
	jobID, err := repository.ParseID(id)
	if err != nil {
		return domain.Job{}, err
	}

	job, err := s.repo.FindJob(ctx, jobID)
	if err != nil {
		return domain.Job{}, fmt.Errorf("find job %s: %w", jobID, err)
	}
	return job, nil
}

// Latest returns the most recently created jobs, newest first
func (s *service) Latest(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.repo.FindJobs(ctx, repository.Query{
		Sort:  &repository.Sort{Field: repository.FieldCreatedAt, Descending: true},
		Limit: LatestLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("find latest jobs: %w", err)
	}
	return jobs, nil
}

// Create stores a new job posting
func (s *service) Create(ctx context.Context, job domain.Job) (domain.InsertResult, error) {
	job.ID = domain.NewID()
	job.ApplicationCount = 0
	job.CreatedAt = s.clock().UTC()

	res, err := s.repo.InsertJob(ctx, job)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert job: %w", err)
	}

	s.logger.Info("job created", "job_id", res.InsertedID, "hr_email", job.HREmail)
	return res, nil
}
