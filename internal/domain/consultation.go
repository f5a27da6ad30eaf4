package domain

import "time"

// Consultation records an actor engaging with a listing.
type Consultation struct {
	ID             int64
	ServiceID      int64
	UserID         int64
	ConsultingDate time.Time
	Checked        bool
}

// ConsultationFilter narrows consultation listings. Zero fields are ignored.
type ConsultationFilter struct {
	UserID    int64
	ServiceID int64
	Limit     int
}
