package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder hashes plain-text passwords with bcrypt.
type PasswordEncoder struct {
	cost int
}

// NewPasswordEncoder returns an encoder using the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewPasswordEncoder(cost int) *PasswordEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordEncoder{cost: cost}
}

// IsEncoded reports whether password already looks like a bcrypt hash.
func IsEncoded(password string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(password, p) {
			return true
		}
	}
	return false
}

// Encode hashes password unless it is empty or already encoded.
func (e *PasswordEncoder) Encode(password string) (string, error) {
	if password == "" || IsEncoded(password) {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

