package delete_shift

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
	msgInvalidShiftID = "некорректный идентификатор смены"
	msgShiftNotFound  = "смена не найдена"
	msgAdminOnly      = "операция доступна только администратору"
)

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

// Handle DELETE /api/v1/shifts/{shiftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("DELETE /shifts/{id} - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	shiftID, err := strconv.ParseInt(mux.Vars(r)["shiftId"], 10, 64)
	if err != nil || shiftID <= 0 {
		h.logger.Warn("DELETE /shifts/{id} - Invalid shift ID: %s", mux.Vars(r)["shiftId"])
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	if err := h.service.Delete(r.Context(), shiftID); err != nil {
		if errors.Is(err, shiftsService.ErrShiftNotFound) {
			h.logger.Warn("DELETE /shifts/{id} - Shift not found: shift_id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)
			return
		}
		h.logger.Error("DELETE /shifts/{id} - Failed to delete: shift_id=%d, error=%v", shiftID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /shifts/{id} - Shift deleted: shift_id=%d", shiftID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
