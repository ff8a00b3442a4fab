package modify_booking

import (
	"github.com/easybook/EB-BookingService/internal/domain"
	modifyBooking "github.com/easybook/EB-BookingService/internal/usecase/modify_booking"
)

// ModifyBookingRequest HTTP request model
// Все поля опциональны, но хотя бы одно должно быть задано
type ModifyBookingRequest struct {
	SlotID        *int64  `json:"slotId,omitempty"`
	TypeID        *int64  `json:"typeId,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slotId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ServiceType   string  `json:"serviceType"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModifyBookingRequest) ToUseCaseRequest(bookingID, userID int64, role domain.Role) *modifyBooking.Request {
	req := &modifyBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Role:      role,
		NewSlotID: r.SlotID,
		NewTypeID: r.TypeID,
	}
	if r.PaymentMethod != nil {
		method := domain.PaymentMethod(*r.PaymentMethod)
		req.NewPaymentMethod = &method
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *modifyBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ServiceType:   resp.ServiceType,
		Amount:        resp.Amount,
		PaymentMethod: resp.PaymentMethod,
	}
}
