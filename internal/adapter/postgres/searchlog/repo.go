// Package searchlog implements the append-only search history and search
// result store using PostgreSQL.
package searchlog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Repo provides search log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createHistorySQL = `
INSERT INTO search_history (search_query, user_id, "timestamp")
VALUES ($1, $2, $3)
RETURNING id, search_query, user_id, "timestamp"`

const listHistoryByUserSQL = `
SELECT id, search_query, user_id, "timestamp"
FROM search_history
WHERE user_id = $1
ORDER BY "timestamp" DESC, id DESC
LIMIT $2`

const createResultSQL = `
INSERT INTO search_results (search_history_id)
VALUES ($1)
RETURNING id`

const linkResultServicesSQL = `
INSERT INTO search_result_services (search_result_id, service_id)
SELECT $1::bigint, ids.id FROM (SELECT DISTINCT unnest($2::bigint[]) AS id) AS ids`

const getResultByHistorySQL = `
SELECT r.id, r.search_history_id,
       COALESCE(array_agg(rs.service_id ORDER BY rs.service_id) FILTER (WHERE rs.service_id IS NOT NULL), '{}')
FROM search_results r
LEFT JOIN search_result_services rs ON rs.search_result_id = r.id
WHERE r.search_history_id = $1
GROUP BY r.id`

const purgeHistorySQL = `DELETE FROM search_history WHERE "timestamp" < $1`

// CreateHistory appends a search history row. A zero Timestamp is set to now.
// Returns domain.ErrNotFound if UserID references a missing user.
func (r *Repo) CreateHistory(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error) {
	ts := h.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	created, err := scanHistory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createHistorySQL,
		h.SearchQuery, h.UserID, ts,
	))
	if err != nil {
		return nil, postgres.MapError(err, "search_history", h.SearchQuery)
	}
	return &created, nil
}

// ListHistoryByUser returns a user's searches, newest first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListHistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchHistory, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listHistoryByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SearchHistory, 0)
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("list search history: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return result, nil
}

// CreateResult stores the result set of a logged search. Both inserts must
// share a transaction; callers run this inside TxManager.RunInTx.
// Returns domain.ErrAlreadyExists if the history already has a result and
// domain.ErrNotFound if the history or a listing is missing.
func (r *Repo) CreateResult(ctx context.Context, historyID int64, serviceIDs []int64) (*domain.SearchResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	res := domain.SearchResult{SearchHistoryID: historyID}
	if err := q.QueryRow(ctx, createResultSQL, historyID).Scan(&res.ID); err != nil {
		return nil, postgres.MapError(err, "search_result", historyID)
	}

	if _, err := q.Exec(ctx, linkResultServicesSQL, res.ID, serviceIDs); err != nil {
		return nil, postgres.MapError(err, "search_result", historyID)
	}

	res.ServiceIDs = serviceIDs
	return &res, nil
}

// GetResultByHistoryID returns the result linked to a history row with its
// listing ids ascending. Returns domain.ErrNotFound if none was stored.
func (r *Repo) GetResultByHistoryID(ctx context.Context, historyID int64) (*domain.SearchResult, error) {
	var res domain.SearchResult
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getResultByHistorySQL, historyID).
		Scan(&res.ID, &res.SearchHistoryID, &res.ServiceIDs)
	if err != nil {
		return nil, postgres.MapError(err, "search_result", historyID)
	}
	return &res, nil
}

// PurgeHistoryBefore deletes history rows older than threshold; their
// results cascade. Returns the number of history rows removed.
func (r *Repo) PurgeHistoryBefore(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, purgeHistorySQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge search history: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanHistory(row pgx.Row) (domain.SearchHistory, error) {
	var h domain.SearchHistory
	err := row.Scan(&h.ID, &h.SearchQuery, &h.UserID, &h.Timestamp)
	return h, err
}
