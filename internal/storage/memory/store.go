package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

// Store is an in-memory implementation of the repository interfaces. It is
// safe for concurrent use and is intended for tests and local development.
type Store struct {
	mu           sync.RWMutex
	jobs         map[string]domain.Job
	jobOrder     []string
	applications map[string]domain.JobApplication
	appOrder     []string
}

var _ repository.JobRepository = (*Store)(nil)
var _ repository.ApplicationRepository = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		jobs:         make(map[string]domain.Job),
		applications: make(map[string]domain.JobApplication),
	}
}

// FindJobs returns the jobs matching q in insertion order unless q sorts them
func (s *Store) FindJobs(_ context.Context, q repository.Query) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Job, 0)
	for _, id := range s.jobOrder {
		j := s.jobs[id]
		ok, err := matches(q.Filter, func(f repository.Field) (any, error) { return jobField(j, f) })
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, cloneJob(j))
		}
	}

	if q.Sort != nil {
		// creation-time ties resolve in insertion order, newest first when descending
		if q.Sort.Field == repository.FieldCreatedAt && q.Sort.Descending {
			for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
				out[i], out[k] = out[k], out[i]
			}
		}
		if err := sortJobs(out, *q.Sort); err != nil {
			return nil, err
		}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// FindJob returns the job with the given id or repository.ErrNotFound
func (s *Store) FindJob(_ context.Context, id domain.JobID) (domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return domain.Job{}, repository.ErrNotFound
	}
	return cloneJob(j), nil
}

// InsertJob stores a job, assigning an id and creation time when missing
func (s *Store) InsertJob(_ context.Context, job domain.Job) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = domain.NewID()
	} else if _, exists := s.jobs[job.ID]; exists {
		return domain.InsertResult{}, fmt.Errorf("job %s already exists", job.ID)
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	s.jobs[job.ID] = cloneJob(job)
	s.jobOrder = append(s.jobOrder, job.ID)
	return domain.InsertResult{Acknowledged: true, InsertedID: job.ID}, nil
}

// IncrementApplicationCount adds one to the job's application count under the
// store lock and returns the new value
func (s *Store) IncrementApplicationCount(_ context.Context, id domain.JobID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	j.ApplicationCount++
	s.jobs[id] = j
	return j.ApplicationCount, nil
}

// FindApplications returns the applications matching f in insertion order
func (s *Store) FindApplications(_ context.Context, f repository.Filter) ([]domain.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JobApplication, 0)
	for _, id := range s.appOrder {
		app, ok := s.applications[id]
		if !ok {
			continue
		}
		match, err := matches(f, func(field repository.Field) (any, error) { return applicationField(app, field) })
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, app)
		}
	}
	return out, nil
}

// InsertApplication stores an application without its job snapshot
func (s *Store) InsertApplication(_ context.Context, app domain.JobApplication) (domain.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app.ID == "" {
		app.ID = domain.NewID()
	} else if _, exists := s.applications[app.ID]; exists {
		return domain.InsertResult{}, fmt.Errorf("application %s already exists", app.ID)
	}
	app.JobSnapshot = nil

	s.applications[app.ID] = app
	s.appOrder = append(s.appOrder, app.ID)
	return domain.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

// UpdateApplicationStatus sets the status of an application if it exists
func (s *Store) UpdateApplicationStatus(_ context.Context, id, status string) (domain.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return domain.UpdateResult{Acknowledged: true}, nil
	}

	res := domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if app.Status != status {
		app.Status = status
		s.applications[id] = app
		res.ModifiedCount = 1
	}
	return res, nil
}

// DeleteApplication removes an application if it exists
func (s *Store) DeleteApplication(_ context.Context, id string) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[id]; !ok {
		return domain.DeleteResult{Acknowledged: true}, nil
	}
	delete(s.applications, id)
	for i, v := range s.appOrder {
		if v == id {
			s.appOrder = append(s.appOrder[:i], s.appOrder[i+1:]...)
			break
		}
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func matches(f repository.Filter, get func(repository.Field) (any, error)) (bool, error) {
	for _, c := range f.Clauses {
		v, err := get(c.Field)
		if err != nil {
			return false, err
		}
		ok, err := evalClause(c, v)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// absent marks a field the document does not carry. It matches no clause.
type absent struct{}

func evalClause(c repository.Clause, v any) (bool, error) {
	if _, ok := v.(absent); ok {
		return false, nil
	}
	switch c.Op {
	case repository.OpEq:
		return v == c.Value, nil
	case repository.OpContainsFold:
		s, _ := v.(string)
		want, _ := c.Value.(string)
		return strings.Contains(strings.ToLower(s), strings.ToLower(want)), nil
	case repository.OpGte, repository.OpLte:
		n, ok := v.(int)
		bound, ok2 := c.Value.(int)
		if !ok || !ok2 {
			return false, fmt.Errorf("memory: field %s is not numeric", c.Field)
		}
		if c.Op == repository.OpGte {
			return n >= bound, nil
		}
		return n <= bound, nil
	default:
		return false, fmt.Errorf("memory: unsupported operator %q", c.Op)
	}
}

func jobField(j domain.Job, f repository.Field) (any, error) {
	switch f {
	case repository.FieldHREmail:
		return j.HREmail, nil
	case repository.FieldCategory:
		return j.Category, nil
	case repository.FieldLocation:
		return j.Location, nil
	case repository.FieldSalaryMin:
		if j.SalaryRange == nil {
			return absent{}, nil
		}
		return j.SalaryRange.Min, nil
	case repository.FieldSalaryMax:
		if j.SalaryRange == nil {
			return absent{}, nil
		}
		return j.SalaryRange.Max, nil
	default:
		return nil, fmt.Errorf("memory: unknown job field %q", f)
	}
}

func applicationField(a domain.JobApplication, f repository.Field) (any, error) {
	switch f {
	case repository.FieldApplicant:
		return a.ApplicantEmail, nil
	case repository.FieldJobID:
		return a.JobID, nil
	default:
		return nil, fmt.Errorf("memory: unknown application field %q", f)
	}
}

func sortJobs(jobs []domain.Job, by repository.Sort) error {
	var less func(a, b domain.Job) bool
	switch by.Field {
	case repository.FieldSalaryMin:
		less = salaryLess(func(r *domain.SalaryRange) int { return r.Min })
	case repository.FieldSalaryMax:
		less = salaryLess(func(r *domain.SalaryRange) int { return r.Max })
	case repository.FieldCreatedAt:
		less = func(a, b domain.Job) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return fmt.Errorf("memory: cannot sort by %q", by.Field)
	}

	sort.SliceStable(jobs, func(i, k int) bool {
		if by.Descending {
			return less(jobs[k], jobs[i])
		}
		return less(jobs[i], jobs[k])
	})
	return nil
}

// salaryLess orders jobs without a salary range before every job that has one
func salaryLess(bound func(*domain.SalaryRange) int) func(a, b domain.Job) bool {
	return func(a, b domain.Job) bool {
		if a.SalaryRange == nil || b.SalaryRange == nil {
			return a.SalaryRange == nil && b.SalaryRange != nil
		}
		return bound(a.SalaryRange) < bound(b.SalaryRange)
	}
}

func cloneJob(j domain.Job) domain.Job {
	if j.SalaryRange != nil {
		r := *j.SalaryRange
		j.SalaryRange = &r
	}
	j.Requirements = append([]string(nil), j.Requirements...)
	j.Responsibilities = append([]string(nil), j.Responsibilities...)
	return j
}
