package domain

import "time"

// BlockedDate marks a date on which no bookings or shifts may be scheduled
type BlockedDate struct {
	Date  time.Time
	SetBy int64
}

// Review is a customer's rating of a past booking; at most one per booking
type Review struct {
	ID         int64
	BookingID  int64
	CustomerID int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// IsValidRating returns true if rating is within the allowed range
func IsValidRating(rating int) bool {
	return rating >= MinReviewRating && rating <= MaxReviewRating
}
