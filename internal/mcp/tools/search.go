package tools

import (
	"context"
	"fmt"
	"strconv"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Email     string `json:"email,omitempty" jsonschema:"Employer (hr_email) to filter by"`
	Category  string `json:"category,omitempty" jsonschema:"Exact job category"`
	Search    string `json:"search,omitempty" jsonschema:"Case-insensitive location substring"`
	MinSalary *int   `json:"min_salary,omitempty" jsonschema:"Lowest acceptable salaryRange.min, used together with max_salary"`
	MaxSalary *int   `json:"max_salary,omitempty" jsonschema:"Highest acceptable salaryRange.max, used together with min_salary"`
	SortDesc  bool   `json:"sort_desc,omitempty" jsonschema:"Sort by salaryRange.min, highest first"`
	Latest    bool   `json:"latest,omitempty" jsonschema:"Ignore filters and return the newest postings"`
}

// JobSearchResult lists the matching jobs
type JobSearchResult struct {
	Jobs  []domain.Job `json:"jobs" jsonschema:"Matching job postings"`
	Count int          `json:"count" jsonschema:"Number of jobs returned"`
}

type jobSearchTool struct {
	jobs   job.Service
	logger *logging.Logger
}

// WithJobSearch registers the job_search tool
func WithJobSearch(jobs job.Service) Option {
	return func(reg *registry) {
		handler := jobSearchTool{jobs: jobs, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search stored job postings by employer, category, location and salary range",
		}, handler.handle)
	}
}

func (t jobSearchTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobSearchParams{}
	}

	var (
		jobs []domain.Job
		err  error
	)
	if params.Latest {
		jobs, err = t.jobs.Latest(ctx)
	} else {
		jobs, err = t.jobs.List(ctx, params.queryParams())
	}
	if err != nil {
		t.logger.Warn("job_search failed", "err", err)
		return nil, nil, fmt.Errorf("job_search: %w", err)
	}

	t.logger.Debug("job_search completed", "count", len(jobs), "latest", params.Latest)

	result := JobSearchResult{Jobs: jobs, Count: len(jobs)}
	return textResult(fmt.Sprintf("found %d job(s)", result.Count)), result, nil
}

func (p *JobSearchParams) queryParams() job.QueryParams {
	q := job.QueryParams{
		Email:    p.Email,
		Category: p.Category,
		Search:   p.Search,
	}
	if p.MinSalary != nil && p.MaxSalary != nil {
		q.Min = strconv.Itoa(*p.MinSalary)
		q.Max = strconv.Itoa(*p.MaxSalary)
	}
	if p.SortDesc {
		q.Sort = "true"
	}
	return q
}
