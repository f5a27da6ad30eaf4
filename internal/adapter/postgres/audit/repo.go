// Package audit implements the catalog audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

var auditColumns = []string{
	"id", "user_id", "entity_type", "entity_id", "service_id", "action", "changes", "created_at",
}

const logSQL = `
INSERT INTO catalog_audit (user_id, entity_type, entity_id, service_id, action, changes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, entity_type, entity_id, service_id, action, changes, created_at`

// Log appends a record. It joins the caller's transaction when ctx carries one.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) (*domain.AuditRecord, error) {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("audit %s %d marshal changes: %w", rec.EntityType, rec.EntityID, err)
	}

	saved, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, logSQL,
		rec.UserID, string(rec.EntityType), rec.EntityID, rec.ServiceID, string(rec.Action), raw,
	))
	if err != nil {
		return nil, postgres.MapError(err, "audit", rec.EntityID)
	}
	return &saved, nil
}

// ListByService returns the records of a listing, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByService(ctx context.Context, serviceID int64, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query, args, err := postgres.Builder.
		Select(auditColumns...).
		From("catalog_audit").
		Where("service_id = ?", serviceID).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit for service", serviceID)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "audit for service", serviceID)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		raw        []byte
		createdAt  time.Time
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &rec.ServiceID, &action, &raw, &createdAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.AuditEntity(entityType)
	rec.Action = domain.AuditAction(action)
	rec.CreatedAt = createdAt.UTC()

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit %d unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
