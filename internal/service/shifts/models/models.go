package models

import (
	"github.com/easybook/EB-BookingService/internal/domain"
)

// ShiftResponse смена в ответе API
type ShiftResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// ShiftDetailsResponse строка дневного обзора смен для администратора
type ShiftDetailsResponse struct {
	ShiftID      int64  `json:"shift_id"`
	EmployeeName string `json:"employee_name"`
	Display      string `json:"display"`
}

// DayShiftsResponse смены на одну дату
type DayShiftsResponse struct {
	Shifts []ShiftDetailsResponse `json:"shifts"`
}

// ChangeRequestResponse строка входящих запросов на изменение смен
type ChangeRequestResponse struct {
	RequestID    int64  `json:"request_id"`
	EmployeeName string `json:"employee_name"`
	RequestType  string `json:"request_type"`
	ShiftDate    string `json:"shift_date"`
	Display      string `json:"display"`
	Reason       string `json:"reason"`
}

// ChangeRequestListResponse список непрочитанных запросов
type ChangeRequestListResponse struct {
	Requests []ChangeRequestResponse `json:"requests"`
}

// NextShiftResponse дата ближайшей смены сотрудника; nil, если смен нет
type NextShiftResponse struct {
	Date *string `json:"date"`
}

// FromDomainShift конвертирует domain.Shift в ShiftResponse
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date.Format(domain.DateFormat),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
	}
}

// FromDomainShiftDetails конвертирует список domain.ShiftDetails в DayShiftsResponse
func FromDomainShiftDetails(details []*domain.ShiftDetails) *DayShiftsResponse {
	resp := &DayShiftsResponse{Shifts: make([]ShiftDetailsResponse, 0, len(details))}
	for _, d := range details {
		resp.Shifts = append(resp.Shifts, ShiftDetailsResponse{
			ShiftID:      d.ShiftID,
			EmployeeName: d.EmployeeName,
			Display:      d.StartTime.Display() + " - " + d.EndTime.Display(),
		})
	}
	return resp
}

// FromDomainChangeRequests конвертирует список domain.ChangeRequestView в ChangeRequestListResponse
func FromDomainChangeRequests(views []*domain.ChangeRequestView) *ChangeRequestListResponse {
	resp := &ChangeRequestListResponse{Requests: make([]ChangeRequestResponse, 0, len(views))}
	for _, v := range views {
		resp.Requests = append(resp.Requests, ChangeRequestResponse{
			RequestID:    v.RequestID,
			EmployeeName: v.EmployeeName,
			RequestType:  string(v.RequestType),
			ShiftDate:    v.ShiftDate.Format(domain.DateFormat),
			Display:      v.StartTime.Display() + " - " + v.EndTime.Display(),
			Reason:       v.Reason,
		})
	}
	return resp
}
