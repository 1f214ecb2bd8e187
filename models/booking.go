package models

import "time"

// Booking outcome statuses. A blocked outcome is a normal result, not a
// failure: the call executed correctly and determined booking must not
// proceed.
const (
	BookingConfirmed = "confirmed"
	BookingBlocked   = "blocked"
)

// BookingOutcome is the tagged result of a booking attempt.
type BookingOutcome struct {
	Status       string  `json:"status"` // "confirmed" or "blocked"
	Reason       string  `json:"reason,omitempty"`
	Reference    string  `json:"booking_reference,omitempty"`
	ItemID       string  `json:"item_id,omitempty"`
	Description  string  `json:"description,omitempty"`
	TotalCharged float64 `json:"total_charged,omitempty"`
	Currency     string  `json:"currency,omitempty"`
}

// BookingRecord is a confirmed booking kept in the chat session for the
// bookings summary. It lives no longer than the session itself.
type BookingRecord struct {
	Type      string    `json:"type"` // "flight" or "hotel"
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}
