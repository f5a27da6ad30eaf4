package domain

import "time"

// AuditEntity names the kind of catalog object an audit record refers to.
type AuditEntity string

const (
	AuditEntityService AuditEntity = "SERVICE"
	AuditEntityKeyword AuditEntity = "KEYWORD"
)

func (e AuditEntity) IsValid() bool {
	return e == AuditEntityService || e == AuditEntityKeyword
}

// AuditAction is the kind of change an audit record describes.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditRecord is one administrative change to the catalog.
// UserID is nil for changes made outside a request (CLI, seeding).
// ServiceID is the listing the change belongs to, also for keyword changes.
type AuditRecord struct {
	ID         int64
	UserID     *int64
	EntityType AuditEntity
	EntityID   int64
	ServiceID  int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
