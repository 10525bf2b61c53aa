package projects

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Repo provides persistence operations for projects.
type Repo struct {
	db    *sql.DB
	cache *OptionsCache // nil when Redis is not configured
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// WithOptionsCache attaches a read-through cache for distinct-value lookups.
func (r *Repo) WithOptionsCache(cache *OptionsCache) *Repo {
	r.cache = cache
	return r
}

// List runs the built filter query and returns rows in store order.
func (r *Repo) List(ctx context.Context, f Filter) ([]Project, error) {
	query, args := BuildListQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Op: "list projects", Err: err}
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Status, &p.Applicant,
			&p.SubmissionDate, &p.Place, &p.User,
		); err != nil {
			return nil, &StoreError{Op: "scan project", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list projects", Err: err}
	}
	return out, nil
}

// GetByID looks a project up by the textual form of its identifier, so the
// raw path parameter can be matched without a numeric parse.
func (r *Repo) GetByID(ctx context.Context, id string) (*Project, error) {
	const q = selectColumns + ` WHERE CAST("project id" AS TEXT) = $1`

	var p Project
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Status, &p.Applicant,
		&p.SubmissionDate, &p.Place, &p.User,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get project", Err: err}
	}
	return &p, nil
}

// Create validates the input, normalizes status and inserts the row.
// The store assigns id and submission date; the stored row is returned.
func (r *Repo) Create(ctx context.Context, in CreateInput) (*Project, error) {
	in = in.trimmed()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	const q = `
INSERT INTO projects ("project name", status, applicant, "submission date", place, "user")
VALUES ($1, $2, $3, NOW(), $4, $5)
RETURNING "project id", "project name", status, applicant, "submission date", place, "user"`

	var p Project
	err := r.db.QueryRowContext(ctx, q,
		in.Name, normalizeStatus(in.Status), in.Applicant, in.Place, in.User,
	).Scan(
		&p.ID, &p.Name, &p.Status, &p.Applicant,
		&p.SubmissionDate, &p.Place, &p.User,
	)
	if err != nil {
		return nil, &StoreError{Op: "create project", Err: err}
	}

	if r.cache != nil {
		r.cache.Invalidate(ctx)
	}
	return &p, nil
}

// optionColumns whitelists the fields distinct-value lookups may target.
var optionColumns = map[string]string{
	"status": `status`,
	"place":  `place`,
	"user":   `"user"`,
}

// DistinctValues returns the sorted distinct non-empty values of one of the
// filter option columns. NULL and blank values are excluded.
func (r *Repo) DistinctValues(ctx context.Context, field string) ([]string, error) {
	column, ok := optionColumns[field]
	if !ok {
		return nil, &StoreError{Op: "distinct values", Err: errors.New("unknown field " + field)}
	}

	if r.cache != nil {
		if values, ok := r.cache.Get(ctx, field); ok {
			return values, nil
		}
	}

	q := `SELECT DISTINCT ` + column + ` FROM projects WHERE ` + column +
		` IS NOT NULL AND BTRIM(` + column + `) <> '' ORDER BY ` + column + ` ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, &StoreError{Op: "distinct values", Err: err}
	}
	defer rows.Close()

	values := make([]string, 0, 8)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, &StoreError{Op: "distinct values", Err: err}
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "distinct values", Err: err}
	}

	if r.cache != nil {
		r.cache.Set(ctx, field, values)
	}
	return values, nil
}

// Validate reports the required fields that are missing, in declaration
// order, as a ValidationError.
func (in CreateInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}

func (in CreateInput) trimmed() CreateInput {
	return CreateInput{
		Name:      strings.TrimSpace(in.Name),
		Status:    strings.TrimSpace(in.Status),
		Applicant: strings.TrimSpace(in.Applicant),
		Place:     strings.TrimSpace(in.Place),
		User:      strings.TrimSpace(in.User),
	}
}

// normalizeStatus upper-cases the first character and lower-cases the rest,
// so "PENDING" and "pending" both store as "Pending".
func normalizeStatus(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
