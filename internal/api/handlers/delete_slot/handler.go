package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	slotsService "github.com/easybook/EB-BookingService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "временной слот не найден"
	msgSlotInUse     = "у слота есть активные записи"
	msgAdminOnly     = "операция доступна только администратору"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("DELETE /slots/{id} - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %s", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotInUse):
			h.logger.Warn("DELETE /slots/{id} - Slot in use: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotInUse)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
