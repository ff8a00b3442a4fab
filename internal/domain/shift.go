package domain

import (
	"time"

	"github.com/easybook/EB-BookingService/pkg/types"
)

// Shift represents an employee's working window on a date
type Shift struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// IsCompleted reports whether the shift is over relative to now
// Past dates are always completed; today's shift is completed once its end time passes
func (s *Shift) IsCompleted(now time.Time) bool {
	shiftDay := DateOnly(s.Date)
	today := DateOnly(now)

	if shiftDay.Before(today) {
		return true
	}
	if shiftDay.After(today) {
		return false
	}
	return s.EndTime.IsBefore(types.NewTimeString(now))
}

// ChangeRequestType тип запроса на изменение смены
type ChangeRequestType string

const (
	ChangeRequestSwap   ChangeRequestType = "swap"
	ChangeRequestCancel ChangeRequestType = "cancel"
	ChangeRequestAdjust ChangeRequestType = "adjust"
)

// ShiftChangeRequest represents an employee's request to change a shift,
// resolved (marked read) by an admin. Append-only apart from cascade deletion.
type ShiftChangeRequest struct {
	ID          int64
	EmployeeID  int64
	ShiftID     int64
	RequestType ChangeRequestType
	Reason      string
	ReadStatus  bool
}

// ShiftDetails is the admin day-view row: shift times joined with the employee name
type ShiftDetails struct {
	ShiftID      int64
	EmployeeName string
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// ChangeRequestView is the admin inbox row: request fields joined with
// the employee name and the shift's date and times.
type ChangeRequestView struct {
	RequestID    int64
	EmployeeName string
	RequestType  ChangeRequestType
	ShiftDate    time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Reason       string
	ReadStatus   bool
}
