package assign_shift

import (
	"errors"
	"net/http"
	"time"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	shiftsService "github.com/easybook/EB-BookingService/internal/service/shifts"
	"github.com/easybook/EB-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgDateBlocked        = "дата заблокирована"
	msgInvalidInput       = "некорректные данные запроса"
	msgAdminOnly          = "операция доступна только администратору"
)

// AssignShiftRequest HTTP request model
type AssignShiftRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "17:00"
}

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("POST /shifts - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req AssignShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /shifts - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	start, errStart := types.NewTimeStringFromString(req.StartTime)
	end, errEnd := types.NewTimeStringFromString(req.EndTime)
	if errStart != nil || errEnd != nil {
		h.logger.Warn("POST /shifts - Invalid time: start=%s, end=%s", req.StartTime, req.EndTime)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Assign(r.Context(), req.EmployeeID, date, start, end)
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrDateBlocked):
			h.logger.Warn("POST /shifts - Date is blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, shiftsService.ErrInvalidInput):
			h.logger.Warn("POST /shifts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shifts - Failed to assign shift: employee_id=%d, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts - Shift assigned: shift_id=%d, employee_id=%d, date=%s", result.ID, req.EmployeeID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
