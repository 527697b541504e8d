package repository

// Field names a filterable job property. Nested properties use dotted paths
// the way the JSON documents nest them.
type Field string

const (
	FieldHREmail   Field = "hr_email"
	FieldCategory  Field = "category"
	FieldLocation  Field = "location"
	FieldSalaryMin Field = "salaryRange.min"
	FieldSalaryMax Field = "salaryRange.max"
	FieldApplicant Field = "applicant_email"
	FieldJobID     Field = "job_id"
	FieldCreatedAt Field = "createdAt"
)

// Op is the comparison a clause applies
type Op string

const (
	OpEq           Op = "eq"
	OpContainsFold Op = "contains_fold"
	OpGte          Op = "gte"
	OpLte          Op = "lte"
)

// Clause is a single named predicate on one field
type Clause struct {
	Field Field
	Op    Op
	Value any
}

// Filter is a conjunction of clauses. The zero value matches everything.
type Filter struct {
	Clauses []Clause
}

// Where returns a filter built from the given clauses
func Where(clauses ...Clause) Filter {
	return Filter{Clauses: clauses}
}

// And appends a clause and returns the extended filter
func (f Filter) And(c Clause) Filter {
	out := make([]Clause, 0, len(f.Clauses)+1)
	out = append(out, f.Clauses...)
	return Filter{Clauses: append(out, c)}
}

// Empty reports whether the filter matches every document
func (f Filter) Empty() bool {
	return len(f.Clauses) == 0
}

// Eq matches documents whose field equals value
func Eq(field Field, value string) Clause {
	return Clause{Field: field, Op: OpEq, Value: value}
}

// ContainsFold matches documents whose field contains value, ignoring case
func ContainsFold(field Field, value string) Clause {
	return Clause{Field: field, Op: OpContainsFold, Value: value}
}

// Gte matches documents whose numeric field is at least value
func Gte(field Field, value int) Clause {
	return Clause{Field: field, Op: OpGte, Value: value}
}

// Lte matches documents whose numeric field is at most value
func Lte(field Field, value int) Clause {
	return Clause{Field: field, Op: OpLte, Value: value}
}

// Sort orders query results by a single field
type Sort struct {
	Field      Field
	Descending bool
}

// Query bundles a filter with an optional sort and limit
type Query struct {
	Filter Filter
	Sort   *Sort
	Limit  int
}
