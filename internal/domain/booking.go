package domain

import (
	"time"

	"github.com/easybook/EB-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of an appointment
type BookingStatus string

const (
	StatusCurrent BookingStatus = "current"
	StatusPast    BookingStatus = "past"
	StatusCancel  BookingStatus = "cancel"
)

// Booking represents a customer's appointment occupying one spot of a time slot
type Booking struct {
	ID            int64
	CustomerID    int64
	SlotID        int64
	TypeID        int64
	TransactionID int64
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCurrent returns true if the booking is an upcoming appointment
func (b *Booking) IsCurrent() bool {
	return b.Status == StatusCurrent
}

// CanBeCancelled returns true if the booking can be cancelled
// Only current bookings can be cancelled; past and cancelled ones are final
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusCurrent
}

// CanBeModifiedBy reports whether the booking's slot or service can be changed
// by a user with the given role. Admins may also move a past booking's slot;
// the status sweep then revives it if the new slot lies in the future.
// Cancelled bookings are final.
func (b *Booking) CanBeModifiedBy(role Role) bool {
	switch b.Status {
	case StatusCurrent:
		return true
	case StatusPast:
		return role == RoleAdmin
	default:
		return false
	}
}

// BookingDetails is the denormalized day-view row: slot times joined with
// customer name, service type and payment method.
type BookingDetails struct {
	BookingID     int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	CustomerName  string
	ServiceType   string
	PaymentMethod PaymentMethod
	Status        BookingStatus
}

// ReminderBooking is the next-day reminder row: the booking joined with
// the customer's contact data and the slot's times.
type ReminderBooking struct {
	BookingID     int64
	CustomerName  string
	CustomerEmail string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ServiceType   string
}
