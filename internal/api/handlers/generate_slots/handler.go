package generate_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	slotsService "github.com/easybook/EB-BookingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateBlocked        = "дата заблокирована"
	msgAdminOnly          = "операция доступна только администратору"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

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

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("POST /slots/generate - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /slots/generate - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GenerateDefaultSlots(r.Context(), date)
	if err != nil {
		if errors.Is(err, slotsService.ErrDateBlocked) {
			h.logger.Warn("POST /slots/generate - Date is blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)
			return
		}
		h.logger.Error("POST /slots/generate - Failed to generate slots: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots/generate - Generated slots for date=%s: added=%d, skipped=%d",
		req.Date, result.Added, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, result)
}
