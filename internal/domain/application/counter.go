package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

// ErrJobNotFound is returned when the counted job does not exist
var ErrJobNotFound = errors.New("job not found")

// Counter keeps Job.ApplicationCount in step with new submissions.
// Deleting an application does not decrement the count.
type Counter struct {
	jobs JobCounter
}

// NewCounter creates a Counter
func NewCounter(jobs JobCounter) *Counter {
	return &Counter{jobs: jobs}
}

// Increment adds one to the job's application count and returns the new value
func (c *Counter) Increment(ctx context.Context, jobID domain.JobID) (int, error) {
	n, err := c.jobs.IncrementApplicationCount(ctx, jobID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if err != nil {
		return 0, fmt.Errorf("increment application count of job %s: %w", jobID, err)
	}
	return n, nil
}
