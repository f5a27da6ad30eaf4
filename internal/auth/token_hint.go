package auth

import (
	"regexp"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailHint extracts an email address from the payload of a bearer token
// without verifying its signature or expiry. The "sub" claim is preferred,
// then "email". It returns "" when no email-shaped claim is present.
//
// The result is an identity hint only. It must never be used for
// authorization; verified principals come from JWTManager.
func EmailHint(token string) string {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, key := range []string{"sub", "email"} {
		v, ok := claims[key].(string)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if emailPattern.MatchString(v) {
			return v
		}
	}
	return ""
}
