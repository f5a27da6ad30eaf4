package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an email address that no other test uses.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uniqueSuffix() + "@example.com"
}

// UniqueWord returns a lowercase alphabetic token unlikely to collide with
// other tests' keywords. It survives stemming unchanged.
func UniqueWord() string {
	const letters = "bcdfghjklmnpqrtvwxz"
	id := uuid.New()
	b := make([]byte, 10)
	for i := range b {
		b[i] = letters[int(id[i])%len(letters)]
	}
	return "zq" + string(b)
}

// SeedUser inserts a STANDARD_USER with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	u := domain.User{
		Email:     UniqueEmail("user"),
		Firstname: "Test",
		Lastname:  "User " + uniqueSuffix(),
		Role:      domain.RoleStandardUser,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, firstname, lastname, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Email, u.Firstname, u.Lastname, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedListing inserts a listing in the given state with the keywords stored
// verbatim (no normalization).
func SeedListing(t *testing.T, pool *pgxpool.Pool, state domain.ServiceState, keywords ...string) domain.ServiceListing {
	t.Helper()
	ctx := context.Background()

	l := domain.ServiceListing{
		Name:        "Listing " + uniqueSuffix(),
		Description: "seeded listing",
		State:       state,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO services (name, description, state)
		 VALUES ($1, $2, $3)
		 RETURNING id, checked, created_at`,
		l.Name, l.Description, string(l.State),
	).Scan(&l.ID, &l.Checked, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedListing insert service: %v", err)
	}

	for _, kw := range keywords {
		k := domain.Keyword{ServiceID: l.ID, Name: kw}
		err := pool.QueryRow(ctx,
			`INSERT INTO keywords (service_id, keyword_name) VALUES ($1, $2) RETURNING id`,
			l.ID, kw,
		).Scan(&k.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedListing insert keyword: %v", err)
		}
		l.Keywords = append(l.Keywords, k)
	}

	return l
}

// SeedConsultation inserts a consultation row.
func SeedConsultation(t *testing.T, pool *pgxpool.Pool, serviceID, userID int64) domain.Consultation {
	t.Helper()

	c := domain.Consultation{ServiceID: serviceID, UserID: userID, Checked: true}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO consultations (service_id, user_id, checked)
		 VALUES ($1, $2, true)
		 RETURNING id, consulting_date`,
		serviceID, userID,
	).Scan(&c.ID, &c.ConsultingDate)
	if err != nil {
		t.Fatalf("testhelper: SeedConsultation: %v", err)
	}

	return c
}

// CountRows returns the number of rows in table matching where (may be "").
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}

	var n int
	if err := pool.QueryRow(context.Background(), q, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
