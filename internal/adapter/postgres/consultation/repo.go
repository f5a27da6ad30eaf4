// Package consultation implements the Consultation repository using PostgreSQL.
package consultation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Repo provides consultation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new consultation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

var consultationColumns = []string{"id", "service_id", "user_id", "consulting_date", "checked"}

const createSQL = `
INSERT INTO consultations (service_id, user_id, consulting_date, checked)
VALUES ($1, $2, $3, $4)
RETURNING id, service_id, user_id, consulting_date, checked`

const getByIDSQL = `
SELECT id, service_id, user_id, consulting_date, checked
FROM consultations
WHERE id = $1`

const deleteSQL = `DELETE FROM consultations WHERE id = $1`

// Create inserts a consultation. A zero ConsultingDate is set to now.
// Returns domain.ErrNotFound if the listing or user does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	date := c.ConsultingDate
	if date.IsZero() {
		date = time.Now().UTC()
	}

	created, err := scanConsultation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		c.ServiceID, c.UserID, date, c.Checked,
	))
	if err != nil {
		return nil, postgres.MapError(err, "consultation", c.ServiceID)
	}
	return &created, nil
}

// GetByID returns a consultation.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Consultation, error) {
	c, err := scanConsultation(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "consultation", id)
	}
	return &c, nil
}

// List returns consultations newest first, narrowed by the non-zero fields
// of f. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.ConsultationFilter) ([]domain.Consultation, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := postgres.Builder.
		Select(consultationColumns...).
		From("consultations").
		OrderBy("consulting_date DESC", "id DESC").
		Limit(uint64(limit))
	if f.UserID != 0 {
		query = query.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.ServiceID != 0 {
		query = query.Where(sq.Eq{"service_id": f.ServiceID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list consultations: build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Consultation, 0)
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("list consultations: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return result, nil
}

// Delete removes a consultation.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "consultation", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "consultation", id)
	}
	return nil
}

func scanConsultation(row pgx.Row) (domain.Consultation, error) {
	var c domain.Consultation
	err := row.Scan(&c.ID, &c.ServiceID, &c.UserID, &c.ConsultingDate, &c.Checked)
	return c, err
}
