package domain

import (
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/pkg/types"
)

// Default slot generation values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxBookingsPerSlot  = 2
)

// Business rule constants
const (
	// MaxActiveBookingsPerCustomer предел одновременных активных записей клиента
	MaxActiveBookingsPerCustomer = 3

	MinReviewRating = 1
	MaxReviewRating = 5

	MaxReviewCommentLength = 500
	MaxChangeReasonLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business hours of the salon
const (
	WeekdayOpenTime  = types.TimeString("09:00")
	WeekdayCloseTime = types.TimeString("17:00")
	WeekendOpenTime  = types.TimeString("10:00")
	WeekendCloseTime = types.TimeString("16:00")
)

// BusinessHours часы работы салона на конкретный день
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// BusinessHoursFor возвращает часы работы для даты:
// будни 09:00-17:00, выходные 10:00-16:00
func BusinessHoursFor(date time.Time) BusinessHours {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return BusinessHours{Open: WeekendOpenTime, Close: WeekendCloseTime}
	default:
		return BusinessHours{Open: WeekdayOpenTime, Close: WeekdayCloseTime}
	}
}

// Display возвращает часы работы в виде строки, например "9AM - 5PM"
func (h BusinessHours) Display() string {
	return shortHour(h.Open) + " - " + shortHour(h.Close)
}

func shortHour(t types.TimeString) string {
	total, err := t.Minutes()
	if err != nil {
		return t.String()
	}
	hours := total / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, period)
}
