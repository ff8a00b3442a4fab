package get_shift_requests

import (
	"net/http"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
)

const (
	msgAdminOnly = "операция доступна только администратору"
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

// Handle GET /api/v1/shift-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("GET /shift-requests - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	resp, err := h.service.UnreadRequests(r.Context())
	if err != nil {
		h.logger.Error("GET /shift-requests - Failed to list requests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shift-requests - Returned %d unread requests", len(resp.Requests))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
