package models

import (
	"errors"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// ErrInvalidStatus возвращается при неизвестном статусе записи
var ErrInvalidStatus = errors.New("invalid booking status")

// BookingResponse запись клиента в ответе API
type BookingResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	SlotID        int64     `json:"slot_id"`
	TypeID        int64     `json:"type_id"`
	TransactionID int64     `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingListResponse история записей клиента
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DayBookingResponse строка дневного обзора записей для администратора
type DayBookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	Display       string `json:"display"`
	CustomerName  string `json:"customer_name"`
	ServiceType   string `json:"service_type"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

// DayShiftResponse строка дневного обзора смен для администратора
type DayShiftResponse struct {
	ShiftID      int64  `json:"shift_id"`
	EmployeeName string `json:"employee_name"`
	Display      string `json:"display"`
}

// DayViewResponse дневной обзор администратора: записи и смены на дату
type DayViewResponse struct {
	Date          string               `json:"date"`
	BusinessHours string               `json:"business_hours"`
	Bookings      []DayBookingResponse `json:"bookings"`
	Shifts        []DayShiftResponse   `json:"shifts"`
}

// FromDomainBookingList конвертирует список бронирований в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:            b.ID,
			CustomerID:    b.CustomerID,
			SlotID:        b.SlotID,
			TypeID:        b.TypeID,
			TransactionID: b.TransactionID,
			Status:        string(b.Status),
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		})
	}
	return resp
}

// FromDomainDayView собирает дневной обзор из записей и смен
func FromDomainDayView(date time.Time, details []*domain.BookingDetails, shifts []*domain.ShiftDetails) *DayViewResponse {
	resp := &DayViewResponse{
		Date:          date.Format(domain.DateFormat),
		BusinessHours: domain.BusinessHoursFor(date).Display(),
		Bookings:      make([]DayBookingResponse, 0, len(details)),
		Shifts:        make([]DayShiftResponse, 0, len(shifts)),
	}
	for _, d := range details {
		resp.Bookings = append(resp.Bookings, DayBookingResponse{
			BookingID:     d.BookingID,
			Display:       d.StartTime.Display() + " - " + d.EndTime.Display(),
			CustomerName:  d.CustomerName,
			ServiceType:   d.ServiceType,
			PaymentMethod: d.PaymentMethod.Display(),
			Status:        string(d.Status),
		})
	}
	for _, s := range shifts {
		resp.Shifts = append(resp.Shifts, DayShiftResponse{
			ShiftID:      s.ShiftID,
			EmployeeName: s.EmployeeName,
			Display:      s.StartTime.Display() + " - " + s.EndTime.Display(),
		})
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку статуса в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusCurrent:
		return domain.StatusCurrent, nil
	case domain.StatusPast:
		return domain.StatusPast, nil
	case domain.StatusCancel:
		return domain.StatusCancel, nil
	default:
		return "", ErrInvalidStatus
	}
}
