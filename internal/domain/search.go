package domain

import "time"

// SearchHistory is one logged search call. Never mutated after creation.
type SearchHistory struct {
	ID          int64
	SearchQuery string
	UserID      *int64
	Timestamp   time.Time
}

// SearchResult links the ACTIVE listings returned for a logged search.
type SearchResult struct {
	ID              int64
	SearchHistoryID int64
	ServiceIDs      []int64
}

// NameQueryPrefix marks history rows produced by name search.
const NameQueryPrefix = "name:"
