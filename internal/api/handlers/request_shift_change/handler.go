package request_shift_change

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	shiftsService "github.com/easybook/EB-BookingService/internal/service/shifts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidShiftID     = "некорректный идентификатор смены"
	msgShiftNotFound      = "смена не найдена"
	msgAccessDenied       = "можно запросить изменение только своей смены"
	msgInvalidInput       = "некорректные данные запроса"
)

// ChangeRequestRequest HTTP request model
type ChangeRequestRequest struct {
	Type   string `json:"type"` // "swap" | "cancel" | "adjust"
	Reason string `json:"reason"`
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

// Handle POST /api/v1/shifts/{shiftId}/change-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /shifts/{id}/change-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	shiftID, err := strconv.ParseInt(mux.Vars(r)["shiftId"], 10, 64)
	if err != nil || shiftID <= 0 {
		h.logger.Warn("POST /shifts/{id}/change-requests - Invalid shift ID: %s", mux.Vars(r)["shiftId"])
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	var req ChangeRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts/{id}/change-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.RequestChange(r.Context(), employeeID, shiftID, domain.ChangeRequestType(req.Type), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("POST /shifts/{id}/change-requests - Shift not found: shift_id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, shiftsService.ErrAccessDenied):
			h.logger.Warn("POST /shifts/{id}/change-requests - Access denied: shift_id=%d, employee_id=%d", shiftID, employeeID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, shiftsService.ErrInvalidInput):
			h.logger.Warn("POST /shifts/{id}/change-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shifts/{id}/change-requests - Failed: shift_id=%d, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts/{id}/change-requests - Request created: shift_id=%d, employee_id=%d", shiftID, employeeID)
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
