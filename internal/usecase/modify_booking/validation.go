package modify_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.NewSlotID == nil && req.NewTypeID == nil && req.NewPaymentMethod == nil {
		return ErrNothingToChange
	}

	if req.NewSlotID != nil && *req.NewSlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.NewTypeID != nil && *req.NewTypeID <= 0 {
		return fmt.Errorf("%w: typeID must be positive", ErrInvalidInput)
	}

	if req.NewPaymentMethod != nil && !req.NewPaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, *req.NewPaymentMethod)
	}

	return nil
}
