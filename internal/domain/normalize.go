package domain

import (
	"strings"
)

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Emails are stored and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// QueryTokens splits a raw search query on whitespace and lowercases every
// token. Blank input yields nil.
func QueryTokens(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}
