package domain

import "time"

// PaymentMethod represents how the customer pays for a booking
type PaymentMethod string

const (
	PaymentInStore PaymentMethod = "in_store"
	PaymentOnline  PaymentMethod = "online"
)

// IsValid returns true for known payment methods
func (m PaymentMethod) IsValid() bool {
	return m == PaymentInStore || m == PaymentOnline
}

// Display returns the customer-facing payment method name
func (m PaymentMethod) Display() string {
	if m == PaymentInStore {
		return "In-store"
	}
	return "Online"
}

// PaymentTransaction records a payment linked to a booking.
// Reference is an opaque identifier; online payments are confirmed
// by the external processor's callback, the service never charges anything itself.
type PaymentTransaction struct {
	ID        int64
	Reference string
	Amount    float64
	Method    PaymentMethod
	Confirmed bool
	CreatedAt time.Time
}

// ServiceType is a catalogue entry: a bookable service with its price
type ServiceType struct {
	ID    int64
	Name  string
	Price float64
}
