package create_booking

import (
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	createBooking "github.com/easybook/EB-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        int64  `json:"slotId"`
	TypeID        int64  `json:"typeId"`
	PaymentMethod string `json:"paymentMethod"` // "in_store" | "online"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	SlotID        int64   `json:"slotId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ServiceType   string  `json:"serviceType"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Reference     string  `json:"reference"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) *createBooking.Request {
	return &createBooking.Request{
		CustomerID:    customerID,
		SlotID:        r.SlotID,
		TypeID:        r.TypeID,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		SlotID:        resp.SlotID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ServiceType:   resp.ServiceType,
		Amount:        resp.Amount,
		PaymentMethod: resp.PaymentMethod,
		Reference:     resp.Reference,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
