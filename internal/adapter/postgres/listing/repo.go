// Package listing implements the service catalog store using PostgreSQL:
// listings, their keywords, and the keyword/name search queries.
package listing

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/keyword"
)

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	normalize func(string) string
}

// New creates a new listing repository. Keywords are normalized with
// keyword.Normalize before every insert or update.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, normalize: keyword.Normalize}
}

var listingColumns = []string{
	"s.id", "s.name", "s.description", "s.state", "s.checked", "s.created_at",
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT s.id, s.name, s.description, s.state, s.checked, s.created_at
FROM services s
WHERE s.id = $1`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`

const createSQL = `
INSERT INTO services (name, description, state)
VALUES ($1, $2, $3)
RETURNING id, name, description, state, checked, created_at`

const updateStateSQL = `
UPDATE services SET state = $2
WHERE id = $1
RETURNING id, name, description, state, checked, created_at`

const markCheckedSQL = `UPDATE services SET checked = true WHERE id = $1`

const deleteSQL = `DELETE FROM services WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a listing with its keywords.
// Returns domain.ErrNotFound if the listing does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ServiceListing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanListing(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "service", id)
	}

	kws, err := r.KeywordsByServiceIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	l.Keywords = kws

	return &l, nil
}

// ExistsByID reports whether a listing with the given id exists.
func (r *Repo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "service", id)
	}
	return exists, nil
}

// SearchByKeywords returns listings having at least one keyword equal to one
// of tokens, compared case-insensitively. Each listing appears once.
// Keywords are not loaded.
func (r *Repo) SearchByKeywords(ctx context.Context, tokens []string) ([]domain.ServiceListing, error) {
	if len(tokens) == 0 {
		return []domain.ServiceListing{}, nil
	}

	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	query := postgres.Builder.
		Select(listingColumns...).
		From("services s").
		Where(sq.Expr(`EXISTS (
			SELECT 1 FROM keywords k
			WHERE k.service_id = s.id AND lower(k.keyword_name) = ANY(?::text[]))`, lowered)).
		OrderBy("s.id")

	return r.selectListings(ctx, query, "search services by keywords")
}

// SearchByName returns listings whose name contains name, case-insensitively.
func (r *Repo) SearchByName(ctx context.Context, name string) ([]domain.ServiceListing, error) {
	if strings.TrimSpace(name) == "" {
		return []domain.ServiceListing{}, nil
	}

	query := postgres.Builder.
		Select(listingColumns...).
		From("services s").
		Where(sq.ILike{"s.name": "%" + postgres.EscapeLike(name) + "%"}).
		OrderBy("s.id")

	return r.selectListings(ctx, query, "search services by name")
}

// SearchByKeywordPrefixes returns listings having any keyword that starts
// with one of prefixes, case-insensitively. Blank prefixes are ignored.
func (r *Repo) SearchByKeywordPrefixes(ctx context.Context, prefixes []string) ([]domain.ServiceListing, error) {
	patterns := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		patterns = append(patterns, postgres.EscapeLike(p)+"%")
	}
	if len(patterns) == 0 {
		return []domain.ServiceListing{}, nil
	}

	query := postgres.Builder.
		Select(listingColumns...).
		From("services s").
		Where(sq.Expr(`EXISTS (
			SELECT 1 FROM keywords k
			WHERE k.service_id = s.id AND lower(k.keyword_name) LIKE ANY(?::text[]))`, patterns)).
		OrderBy("s.id")

	return r.selectListings(ctx, query, "search services by keyword prefixes")
}

// ListRecent returns the most recently created listings.
func (r *Repo) ListRecent(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, error) {
	query := postgres.Builder.
		Select(listingColumns...).
		From("services s").
		OrderBy("s.created_at DESC", "s.id DESC")
	query = applyListFilter(query, f)

	return r.selectListings(ctx, query, "list recent services")
}

// ListPopular returns the listings with the most consultations.
func (r *Repo) ListPopular(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, error) {
	query := postgres.Builder.
		Select(listingColumns...).
		From("services s").
		LeftJoin("consultations c ON c.service_id = s.id").
		GroupBy("s.id").
		OrderBy("count(c.id) DESC", "s.id")
	query = applyListFilter(query, f)

	return r.selectListings(ctx, query, "list popular services")
}

func applyListFilter(query sq.SelectBuilder, f domain.ListingFilter) sq.SelectBuilder {
	if f.ActiveOnly {
		query = query.Where(sq.Eq{"s.state": string(domain.ServiceStateActive)})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	return query
}

func (r *Repo) selectListings(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.ServiceListing, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result, err := scanListings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a listing and its keywords. Keyword names are normalized
// before insert. Run inside a transaction to make the two inserts atomic.
func (r *Repo) Create(ctx context.Context, l *domain.ServiceListing) (*domain.ServiceListing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	state := l.State
	if state == "" {
		state = domain.ServiceStateActive
	}

	created, err := scanListing(q.QueryRow(ctx, createSQL, l.Name, l.Description, string(state)))
	if err != nil {
		return nil, postgres.MapError(err, "service", l.Name)
	}

	names := make([]string, len(l.Keywords))
	for i, k := range l.Keywords {
		names[i] = k.Name
	}

	kws, err := r.insertKeywords(ctx, created.ID, names)
	if err != nil {
		return nil, err
	}
	created.Keywords = kws

	return &created, nil
}

// UpdateState changes a listing's state and returns the updated row
// (without keywords). Returns domain.ErrNotFound if it does not exist.
func (r *Repo) UpdateState(ctx context.Context, id int64, state domain.ServiceState) (*domain.ServiceListing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanListing(q.QueryRow(ctx, updateStateSQL, id, string(state)))
	if err != nil {
		return nil, postgres.MapError(err, "service", id)
	}

	return &l, nil
}

// MarkChecked sets checked = true on a listing.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) MarkChecked(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, markCheckedSQL, id)
	if err != nil {
		return postgres.MapError(err, "service", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "service", id)
	}
	return nil
}

// Delete removes a listing; keywords, consultations and search result links
// cascade. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "service", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "service", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanListing(row pgx.Row) (domain.ServiceListing, error) {
	var (
		l     domain.ServiceListing
		state string
	)
	if err := row.Scan(&l.ID, &l.Name, &l.Description, &state, &l.Checked, &l.CreatedAt); err != nil {
		return domain.ServiceListing{}, err
	}
	l.State = domain.ServiceState(state)
	return l, nil
}

func scanListings(rows pgx.Rows) ([]domain.ServiceListing, error) {
	result := make([]domain.ServiceListing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
