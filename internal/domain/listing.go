package domain

import "time"

// ServiceListing is a published service offering.
type ServiceListing struct {
	ID          int64
	Name        string
	Description string
	State       ServiceState
	Checked     bool
	Keywords    []Keyword
	CreatedAt   time.Time
}

// IsActive reports whether the listing may be surfaced to end users.
func (l *ServiceListing) IsActive() bool {
	return l.State == ServiceStateActive
}

// Keyword is a normalized search term owned by exactly one listing.
type Keyword struct {
	ID        int64
	ServiceID int64
	Name      string
}

// FilterActive returns the listings whose state is ACTIVE, preserving order.
// The input slice is not modified.
func FilterActive(listings []ServiceListing) []ServiceListing {
	out := make([]ServiceListing, 0, len(listings))
	for _, l := range listings {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	return out
}

// ListingIDs extracts the ids of the given listings.
func ListingIDs(listings []ServiceListing) []int64 {
	ids := make([]int64, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

// ListingFilter controls the recent and popular listing queries.
type ListingFilter struct {
	ActiveOnly bool
	Limit      int
}
