package toggle_blocked_date

import (
	"net/http"
	"time"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAdminOnly          = "операция доступна только администратору"
)

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Date string `json:"date"` // "2025-12-25"
}

// ToggleResponse HTTP response model
type ToggleResponse struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
}

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-dates/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blocked-dates/toggle - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("POST /blocked-dates/toggle - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /blocked-dates/toggle - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocked, err := h.service.Toggle(r.Context(), date, adminID)
	if err != nil {
		h.logger.Error("POST /blocked-dates/toggle - Failed to toggle: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /blocked-dates/toggle - Toggled date=%s, blocked=%t, admin_id=%d", req.Date, blocked, adminID)
	handlers.RespondJSON(w, http.StatusOK, ToggleResponse{Date: req.Date, Blocked: blocked})
}
