package models

import "time"

// Booking statuses. A booking created without a determined price is a
// pending quote awaiting manual follow-up.
const (
	StatusConfirmed    = "confirmed"
	StatusPendingQuote = "pending_quote"
	StatusCancelled    = "cancelled"
)

// Booking is a trip reservation or quote request.
type Booking struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Destination string    `json:"destination_name"`
	TravelDate  string    `json:"travel_date"`
	Travelers   int       `json:"travelers_count"`
	Total       float64   `json:"total_amount"`
	Status      string    `json:"status"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingWithUser is a booking joined with its owner's display fields
// and the destination's catalogue image for the admin views. A booking
// whose user no longer exists carries "Unknown" placeholders.
type BookingWithUser struct {
	Booking
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	ImageURL  string `json:"destination_image"`
}
