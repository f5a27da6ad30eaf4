package catalog

import (
	"strings"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxKeywordLength     = 100
	maxKeywordsPerCreate = 50
)

// CreateListingInput holds the parameters for creating a listing.
type CreateListingInput struct {
	Name        string
	Description string
	State       domain.ServiceState // empty = ACTIVE
	Keywords    []string
}

// Validate checks all fields and collects all errors.
func (i CreateListingInput) Validate() error {
	var verr domain.ValidationError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		verr.Add("name", "required")
	}
	if len(name) > maxNameLength {
		verr.Add("name", "max 200 characters")
	}
	if len(i.Description) > maxDescriptionLength {
		verr.Add("description", "max 2000 characters")
	}
	if i.State != "" && !i.State.IsValid() {
		verr.Add("state", "must be ACTIVE, INACTIVE or SUSPENDED")
	}
	if len(i.Keywords) > maxKeywordsPerCreate {
		verr.Add("keywords", "max 50 keywords")
	}
	for _, k := range i.Keywords {
		if msg := keywordProblem(k); msg != "" {
			verr.Add("keywords", msg)
			break
		}
	}

	return verr.Err()
}

func validateKeyword(raw string) error {
	if msg := keywordProblem(raw); msg != "" {
		return domain.NewValidationError("keyword", msg)
	}
	return nil
}

func keywordProblem(raw string) string {
	k := strings.TrimSpace(raw)
	if k == "" {
		return "must not be blank"
	}
	if len(k) > maxKeywordLength {
		return "max 100 characters"
	}
	return ""
}
