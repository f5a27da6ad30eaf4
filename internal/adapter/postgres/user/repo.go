// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, firstname, lastname, COALESCE(password_hash, ''), role, created_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const existsByEmailSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

const createSQL = `
INSERT INTO users (email, firstname, lastname, password_hash, role)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)
RETURNING ` + userColumns

const updateRoleSQL = `
UPDATE users SET role = $2
WHERE email = $1
RETURNING ` + userColumns

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by (normalized) email.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// ExistsByEmail reports whether a user with the email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsByEmailSQL, email).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", email)
	}
	return exists, nil
}

// Create inserts a user. PasswordHash must already be encoded.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	email := domain.NormalizeEmail(u.Email)
	role := u.Role
	if role == "" {
		role = domain.RoleStandardUser
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		email, u.Firstname, u.Lastname, u.PasswordHash, string(role),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &created, nil
}

// UpdateRole sets the role of the user with the given email.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateRoleSQL, email, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Firstname, &u.Lastname, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}
