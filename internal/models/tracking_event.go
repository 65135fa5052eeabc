package models

import "time"

// TrackingEvent is one row of the append-only shipment log. Events are
// never edited or deleted; the newest event defines the current status
// and location of a shipment.
type TrackingEvent struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes,omitempty"`
}
