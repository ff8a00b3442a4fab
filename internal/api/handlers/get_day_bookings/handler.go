package get_day_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	bookingsService "github.com/easybook/EB-BookingService/internal/service/bookings"
	"github.com/easybook/EB-BookingService/pkg/types"
)

const (
	msgMissingDate   = "отсутствует параметр date"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow = "некорректное временное окно, ожидается HH:MM"
	msgStaffOnly     = "операция доступна только сотрудникам"
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

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&start=HH:MM&end=HH:MM
// Дневной обзор записей и смен; окно start/end сужает выдачу до одной смены
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		h.logger.Warn("GET /bookings - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var windowStart, windowEnd *types.TimeString
	if rawStart, rawEnd := r.URL.Query().Get("start"), r.URL.Query().Get("end"); rawStart != "" && rawEnd != "" {
		start, errStart := types.NewTimeStringFromString(rawStart)
		end, errEnd := types.NewTimeStringFromString(rawEnd)
		if errStart != nil || errEnd != nil {
			h.logger.Warn("GET /bookings - Invalid window: start=%s, end=%s", rawStart, rawEnd)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		windowStart, windowEnd = &start, &end
	}

	result, err := h.service.GetDayView(r.Context(), date, windowStart, windowEnd)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		h.logger.Error("GET /bookings - Failed to fetch day view: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Returned day view for date=%s: bookings=%d, shifts=%d",
		rawDate, len(result.Bookings), len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
