package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	bookingsService "github.com/easybook/EB-BookingService/internal/service/bookings"
	"github.com/easybook/EB-BookingService/pkg/ptr"
)

const (
	msgMissingUserID     = "отсутствует идентификатор пользователя"
	msgInvalidCustomerID = "некорректный идентификатор клиента"
	msgInvalidStatus     = "некорректный статус записи"
	msgAccessDenied      = "нет прав на просмотр чужих записей"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings?status=current
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/bookings - Invalid customer ID: %s", mux.Vars(r)["customerId"])
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Клиент видит только свою историю
	if role != domain.RoleAdmin && userID != customerID {
		h.logger.Warn("GET /customers/{id}/bookings - Access denied: user_id=%d, customer_id=%d", userID, customerID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var status *string
	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		status = ptr.Ptr(rawStatus)
	}

	result, err := h.service.GetCustomerBookings(r.Context(), customerID, status)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /customers/{id}/bookings - Invalid status: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /customers/{id}/bookings - Failed to fetch: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{id}/bookings - Returned %d bookings for customer_id=%d", len(result.Bookings), customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
