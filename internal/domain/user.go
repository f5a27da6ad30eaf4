package domain

import "time"

// DefaultAnonymousEmail is the reserved email of the shared anonymous user.
const DefaultAnonymousEmail = "anonymous@system.com"

// User is a persisted actor: registered account, guest, or the anonymous sentinel.
type User struct {
	ID           int64
	Email        string
	Firstname    string
	Lastname     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
