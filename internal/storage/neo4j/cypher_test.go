package neo4j

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/repository"
)

func TestWhereClauseEmpty(t *testing.T) {
	where, params, err := whereClause("j", repository.Filter{})
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, params)
}

func TestWhereClauseRendersEveryOperator(t *testing.T) {
	where, params, err := whereClause("j", repository.Where(
		repository.Eq(repository.FieldHREmail, "hr@x.com"),
		repository.ContainsFold(repository.FieldLocation, "NYC"),
		repository.Gte(repository.FieldSalaryMin, 50000),
		repository.Lte(repository.FieldSalaryMax, 90000),
	))
	require.NoError(t, err)

	assert.Equal(t,
		"WHERE j.hr_email = $p0 AND toLower(j.location) CONTAINS toLower($p1) AND j.salaryMin >= $p2 AND j.salaryMax <= $p3",
		where,
	)
	assert.Equal(t, map[string]any{"p0": "hr@x.com", "p1": "NYC", "p2": 50000, "p3": 90000}, params)
}

func TestWhereClauseUnknownField(t *testing.T) {
	_, _, err := whereClause("j", repository.Where(repository.Eq("salary", "1")))
	require.Error(t, err)
}

func TestOrderClause(t *testing.T) {
	order, err := orderClause("j", nil)
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY j.createdAt ASC, j.id ASC", order)

	order, err = orderClause("j", &repository.Sort{Field: repository.FieldSalaryMin, Descending: true})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY j.salaryMin IS NULL, j.salaryMin DESC, j.createdAt ASC, j.id ASC", order)

	order, err = orderClause("j", &repository.Sort{Field: repository.FieldCreatedAt, Descending: true})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY j.createdAt DESC, j.id DESC", order)

	order, err = orderClause("j", &repository.Sort{Field: repository.FieldSalaryMax})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY j.salaryMax ASC, j.createdAt ASC, j.id ASC", order)
}

func TestMatchQuery(t *testing.T) {
	query, params, err := matchQuery("Job", "j", repository.Query{
		Filter: repository.Where(repository.Eq(repository.FieldCategory, "Eng")),
		Sort:   &repository.Sort{Field: repository.FieldCreatedAt, Descending: true},
		Limit:  8,
	})
	require.NoError(t, err)

	assert.Equal(t, "MATCH (j:Job) WHERE j.category = $p0 RETURN j ORDER BY j.createdAt DESC, j.id DESC LIMIT $limit", query)
	assert.Equal(t, map[string]any{"p0": "Eng", "limit": 8}, params)

	query, params, err = matchQuery("JobApplication", "a", repository.Query{})
	require.NoError(t, err)
	assert.Equal(t, "MATCH (a:JobApplication) RETURN a ORDER BY a.createdAt ASC, a.id ASC", query)
	assert.Empty(t, params)
}

func TestJobPropsWithoutSalaryRange(t *testing.T) {
	props := jobProps(domain.Job{ID: "1", Title: "Volunteer"})
	assert.NotContains(t, props, "salaryMin")
	assert.NotContains(t, props, "salaryMax")

	job := parseJobNode(neo4j.Node{Props: props})
	assert.Nil(t, job.SalaryRange)
	assert.Equal(t, "Volunteer", job.Title)
}

func TestJobPropsSalaryRangeRoundTrip(t *testing.T) {
	props := jobProps(domain.Job{ID: "1", SalaryRange: &domain.SalaryRange{Max: 90000, Currency: "usd"}})
	assert.Equal(t, 0, props["salaryMin"])

	// the driver hands integers back as int64
	props["salaryMin"], props["salaryMax"] = int64(0), int64(90000)
	job := parseJobNode(neo4j.Node{Props: props})
	assert.Equal(t, &domain.SalaryRange{Min: 0, Max: 90000, Currency: "usd"}, job.SalaryRange)
}
