package neo4j

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/jobnest/internal/repository"
)

// properties maps filter fields to node property names
var properties = map[repository.Field]string{
	repository.FieldHREmail:   "hr_email",
	repository.FieldCategory:  "category",
	repository.FieldLocation:  "location",
	repository.FieldSalaryMin: "salaryMin",
	repository.FieldSalaryMax: "salaryMax",
	repository.FieldCreatedAt: "createdAt",
	repository.FieldApplicant: "applicant_email",
	repository.FieldJobID:     "job_id",
}

func property(alias string, f repository.Field) (string, error) {
	p, ok := properties[f]
	if !ok {
		return "", fmt.Errorf("neo4j: unknown field %q", f)
	}
	return alias + "." + p, nil
}

// whereClause renders a filter as a Cypher WHERE clause with positional
// parameters p0, p1, ... It returns an empty string for the empty filter.
func whereClause(alias string, f repository.Filter) (string, map[string]any, error) {
	params := make(map[string]any, len(f.Clauses))
	if f.Empty() {
		return "", params, nil
	}

	parts := make([]string, 0, len(f.Clauses))
	for i, c := range f.Clauses {
		prop, err := property(alias, c.Field)
		if err != nil {
			return "", nil, err
		}
		name := fmt.Sprintf("p%d", i)

		switch c.Op {
		case repository.OpEq:
			parts = append(parts, fmt.Sprintf("%s = $%s", prop, name))
		case repository.OpContainsFold:
			parts = append(parts, fmt.Sprintf("toLower(%s) CONTAINS toLower($%s)", prop, name))
		case repository.OpGte:
			parts = append(parts, fmt.Sprintf("%s >= $%s", prop, name))
		case repository.OpLte:
			parts = append(parts, fmt.Sprintf("%s <= $%s", prop, name))
		default:
			return "", nil, fmt.Errorf("neo4j: unsupported operator %q", c.Op)
		}
		params[name] = c.Value
	}

	return "WHERE " + strings.Join(parts, " AND "), params, nil
}

// orderClause renders the sort, falling back to creation order so results
// come back in insertion order when no sort is requested. Ids are time-ordered
// and break creation-time ties.
func orderClause(alias string, s *repository.Sort) (string, error) {
	created := alias + ".createdAt"
	id := alias + ".id"
	if s == nil {
		return fmt.Sprintf("ORDER BY %s ASC, %s ASC", created, id), nil
	}

	prop, err := property(alias, s.Field)
	if err != nil {
		return "", err
	}
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	if prop == created {
		return fmt.Sprintf("ORDER BY %s %s, %s %s", prop, dir, id, dir), nil
	}
	// Neo4j puts nulls first when descending; documents without the field go last
	if s.Descending {
		return fmt.Sprintf("ORDER BY %s IS NULL, %s DESC, %s ASC, %s ASC", prop, prop, created, id), nil
	}
	return fmt.Sprintf("ORDER BY %s ASC, %s ASC, %s ASC", prop, created, id), nil
}

// matchQuery builds a complete read query for one label
func matchQuery(label, alias string, q repository.Query) (string, map[string]any, error) {
	where, params, err := whereClause(alias, q.Filter)
	if err != nil {
		return "", nil, err
	}
	order, err := orderClause(alias, q.Sort)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "MATCH (%s:%s)", alias, label)
	if where != "" {
		sb.WriteString(" " + where)
	}
	fmt.Fprintf(&sb, " RETURN %s %s", alias, order)
	if q.Limit > 0 {
		sb.WriteString(" LIMIT $limit")
		params["limit"] = q.Limit
	}
	return sb.String(), params, nil
}
