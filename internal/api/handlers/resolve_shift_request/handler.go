package resolve_shift_request

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
	msgAdminOnly        = "операция доступна только администратору"
	msgInvalidRequestID = "некорректный идентификатор запроса"
	msgRequestNotFound  = "запрос на изменение не найден"
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

// Handle PATCH /api/v1/shift-requests/{requestId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin {
		h.logger.Warn("PATCH /shift-requests/{id}/read - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		h.logger.Warn("PATCH /shift-requests/{id}/read - Invalid request ID: %s", mux.Vars(r)["requestId"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	if err := h.service.ResolveRequest(r.Context(), requestID); err != nil {
		if errors.Is(err, shiftsService.ErrRequestNotFound) {
			h.logger.Warn("PATCH /shift-requests/{id}/read - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("PATCH /shift-requests/{id}/read - Failed to resolve: request_id=%d, error=%v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /shift-requests/{id}/read - Request marked as read: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
