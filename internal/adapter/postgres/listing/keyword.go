package listing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

const insertKeywordsSQL = `
INSERT INTO keywords (service_id, keyword_name)
SELECT $1::bigint, name FROM unnest($2::text[]) WITH ORDINALITY AS t(name, ord)
ORDER BY ord
RETURNING id, service_id, keyword_name`

const updateKeywordSQL = `
UPDATE keywords SET keyword_name = $2
WHERE id = $1
RETURNING id, service_id, keyword_name`

const deleteKeywordSQL = `
DELETE FROM keywords WHERE id = $1
RETURNING id, service_id, keyword_name`

const keywordsByServiceIDsSQL = `
SELECT id, service_id, keyword_name
FROM keywords
WHERE service_id = ANY($1::bigint[])
ORDER BY service_id, id`

// AddKeyword normalizes raw and attaches it to a listing.
// Returns domain.ErrNotFound if the listing does not exist.
func (r *Repo) AddKeyword(ctx context.Context, serviceID int64, raw string) (*domain.Keyword, error) {
	kws, err := r.insertKeywords(ctx, serviceID, []string{raw})
	if err != nil {
		return nil, err
	}
	return &kws[0], nil
}

// UpdateKeyword normalizes raw and stores it as the keyword's new name.
// Returns domain.ErrNotFound if the keyword does not exist.
func (r *Repo) UpdateKeyword(ctx context.Context, id int64, raw string) (*domain.Keyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKeyword(q.QueryRow(ctx, updateKeywordSQL, id, r.normalize(raw)))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return &k, nil
}

// DeleteKeyword removes one keyword and returns it as it was stored.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) DeleteKeyword(ctx context.Context, id int64) (*domain.Keyword, error) {
	k, err := scanKeyword(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, deleteKeywordSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "keyword", id)
	}
	return &k, nil
}

// KeywordsByServiceIDs returns the keywords of several listings in one query,
// ordered by listing then id (batch for DataLoader).
func (r *Repo) KeywordsByServiceIDs(ctx context.Context, serviceIDs []int64) ([]domain.Keyword, error) {
	if len(serviceIDs) == 0 {
		return []domain.Keyword{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, keywordsByServiceIDsSQL, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("get keywords by service_ids: %w", err)
	}
	defer rows.Close()

	result, err := scanKeywords(rows)
	if err != nil {
		return nil, fmt.Errorf("get keywords by service_ids: %w", err)
	}
	return result, nil
}

func (r *Repo) insertKeywords(ctx context.Context, serviceID int64, raw []string) ([]domain.Keyword, error) {
	if len(raw) == 0 {
		return []domain.Keyword{}, nil
	}

	names := make([]string, len(raw))
	for i, n := range raw {
		names[i] = r.normalize(n)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, insertKeywordsSQL, serviceID, names)
	if err != nil {
		return nil, postgres.MapError(err, "service", serviceID)
	}
	defer rows.Close()

	kws, err := scanKeywords(rows)
	if err != nil {
		return nil, postgres.MapError(err, "service", serviceID)
	}
	return kws, nil
}

func scanKeyword(row pgx.Row) (domain.Keyword, error) {
	var k domain.Keyword
	err := row.Scan(&k.ID, &k.ServiceID, &k.Name)
	return k, err
}

func scanKeywords(rows pgx.Rows) ([]domain.Keyword, error) {
	result := make([]domain.Keyword, 0)
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
