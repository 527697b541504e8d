package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobnest/internal/repository"
)

func TestBuildQueryEmptyMatchesEverything(t *testing.T) {
	q, err := BuildQuery(QueryParams{})
	require.NoError(t, err)

	assert.True(t, q.Filter.Empty())
	assert.Nil(t, q.Sort)
	assert.Zero(t, q.Limit)
}

func TestBuildQueryAllCriteriaAreANDed(t *testing.T) {
	q, err := BuildQuery(QueryParams{
		Email:    "hr@x.com",
		Category: "Eng",
		Search:   "NYC",
		Min:      "50000",
		Max:      "90000",
		Sort:     "true",
	})
	require.NoError(t, err)

	assert.Equal(t, []repository.Clause{
		repository.Eq(repository.FieldHREmail, "hr@x.com"),
		repository.Eq(repository.FieldCategory, "Eng"),
		repository.ContainsFold(repository.FieldLocation, "NYC"),
		repository.Gte(repository.FieldSalaryMin, 50000),
		repository.Lte(repository.FieldSalaryMax, 90000),
	}, q.Filter.Clauses)
	require.NotNil(t, q.Sort)
	assert.Equal(t, repository.Sort{Field: repository.FieldSalaryMin, Descending: true}, *q.Sort)
}

func TestBuildQueryEachCriterionAddsOneClause(t *testing.T) {
	tests := []struct {
		name   string
		params QueryParams
		want   []repository.Clause
	}{
		{
			name:   "email",
			params: QueryParams{Email: "hr@x.com"},
			want:   []repository.Clause{repository.Eq(repository.FieldHREmail, "hr@x.com")},
		},
		{
			name:   "category",
			params: QueryParams{Category: "Design"},
			want:   []repository.Clause{repository.Eq(repository.FieldCategory, "Design")},
		},
		{
			name:   "search",
			params: QueryParams{Search: "remote"},
			want:   []repository.Clause{repository.ContainsFold(repository.FieldLocation, "remote")},
		},
		{
			name:   "email and category keep both",
			params: QueryParams{Email: "hr@x.com", Category: "Eng"},
			want: []repository.Clause{
				repository.Eq(repository.FieldHREmail, "hr@x.com"),
				repository.Eq(repository.FieldCategory, "Eng"),
			},
		},
		{
			name:   "only min is ignored",
			params: QueryParams{Min: "10"},
			want:   nil,
		},
		{
			name:   "only max is ignored",
			params: QueryParams{Max: "10"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Filter.Clauses)
		})
	}
}

func TestBuildQuerySortFlag(t *testing.T) {
	for _, v := range []string{"", "false", "TRUE", "1"} {
		q, err := BuildQuery(QueryParams{Sort: v})
		require.NoError(t, err)
		assert.Nil(t, q.Sort, "sort=%q", v)
	}
}

func TestBuildQueryRejectsNonIntegerBounds(t *testing.T) {
	_, err := BuildQuery(QueryParams{Min: "abc", Max: "100"})
	assert.ErrorIs(t, err, ErrInvalidSalaryBound)

	_, err = BuildQuery(QueryParams{Min: "100", Max: "1e5"})
	assert.ErrorIs(t, err, ErrInvalidSalaryBound)
}
