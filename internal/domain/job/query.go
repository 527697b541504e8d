package job

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/honeycarbs/jobnest/internal/repository"
)

// ErrInvalidSalaryBound is returned when min or max is not an integer
var ErrInvalidSalaryBound = errors.New("invalid salary bound")

// QueryParams are the optional listing parameters accepted by GET /jobs.
// Empty strings mean "not supplied".
type QueryParams struct {
	Email    string
	Category string
	Search   string
	Min      string
	Max      string
	Sort     string
}

// BuildQuery composes the store filter and sort for a job listing.
// Every supplied criterion adds one clause; clauses are ANDed together.
func BuildQuery(p QueryParams) (repository.Query, error) {
	var q repository.Query

	if p.Email != "" {
		q.Filter = q.Filter.And(repository.Eq(repository.FieldHREmail, p.Email))
	}
	if p.Category != "" {
		q.Filter = q.Filter.And(repository.Eq(repository.FieldCategory, p.Category))
	}
	if p.Search != "" {
		q.Filter = q.Filter.And(repository.ContainsFold(repository.FieldLocation, p.Search))
	}

	if p.Min != "" && p.Max != "" {
		lo, err := parseBound("min", p.Min)
		if err != nil {
			return repository.Query{}, err
		}
		hi, err := parseBound("max", p.Max)
		if err != nil {
			return repository.Query{}, err
		}
		q.Filter = q.Filter.
			And(repository.Gte(repository.FieldSalaryMin, lo)).
			And(repository.Lte(repository.FieldSalaryMax, hi))
	}

	if p.Sort == "true" {
		q.Sort = &repository.Sort{Field: repository.FieldSalaryMin, Descending: true}
	}

	return q, nil
}

func parseBound(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSalaryBound, name, raw)
	}
	return v, nil
}
