package domain

import (
	"time"

	"github.com/easybook/EB-BookingService/pkg/types"
)

// TimeSlot represents a bookable time window on a given date.
// Invariant: 0 <= CurrentBookings <= MaxBookings.
type TimeSlot struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxBookings     int
	CurrentBookings int
}

// IsFull returns true if the slot has no free capacity left
func (s *TimeSlot) IsFull() bool {
	return s.CurrentBookings >= s.MaxBookings
}

// AvailableSpots returns the number of free spots in the slot
func (s *TimeSlot) AvailableSpots() int {
	free := s.MaxBookings - s.CurrentBookings
	if free < 0 {
		return 0
	}
	return free
}

// HasLiveBookings returns true if at least one booking holds the slot's capacity
func (s *TimeSlot) HasLiveBookings() bool {
	return s.CurrentBookings > 0
}

// HasEnded reports whether the slot's end time has already passed relative to now
func (s *TimeSlot) HasEnded(now time.Time) bool {
	slotDay := DateOnly(s.Date)
	today := DateOnly(now)

	if slotDay.Before(today) {
		return true
	}
	if slotDay.After(today) {
		return false
	}
	return s.EndTime.IsBefore(types.NewTimeString(now))
}

// DateOnly strips the time-of-day component, keeping only the calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
