package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxPrefixKeywords <= 0 {
		return fmt.Errorf("max_prefix_keywords must be > 0 (got %d)", s.MaxPrefixKeywords)
	}
	if s.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", s.MaxRows)
	}
	if s.MaxRowsLimit < s.MaxRows {
		return fmt.Errorf("max_rows_limit must be >= max_rows (got %d < %d)", s.MaxRowsLimit, s.MaxRows)
	}
	if s.HistoryRetentionDays <= 0 {
		return fmt.Errorf("history_retention_days must be > 0 (got %d)", s.HistoryRetentionDays)
	}
	return nil
}

func (i *IdentityConfig) validate() error {
	i.AnonymousEmail = strings.ToLower(strings.TrimSpace(i.AnonymousEmail))
	if err := validate.Var(i.AnonymousEmail, "required,email"); err != nil {
		return fmt.Errorf("anonymous_email %q: %w", i.AnonymousEmail, err)
	}
	if i.ConflictRetries < 1 {
		return fmt.Errorf("conflict_retries must be >= 1 (got %d)", i.ConflictRetries)
	}
	return nil
}
