package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
	calendarService "github.com/easybook/EB-BookingService/internal/service/calendar"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month, ожидается 1-12"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2025&month=12
// Маршрут публичный: роль и ID пользователя берутся из заголовков
// сессионного коллаборатора, если они есть; по умолчанию клиентский вид
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		h.logger.Warn("GET /calendar - Invalid year: %s", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /calendar - Invalid month: %s", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	role := domain.Role(r.Header.Get(middleware.HeaderUserRole))
	switch role {
	case domain.RoleAdmin, domain.RoleEmployee:
	default:
		role = domain.RoleCustomer
	}

	var userID int64
	if rawID := r.Header.Get(middleware.HeaderUserID); rawID != "" {
		userID, _ = strconv.ParseInt(rawID, 10, 64)
	}

	result, err := h.service.Generate(r.Context(), role, userID, year, time.Month(monthNum))
	if err != nil {
		if errors.Is(err, calendarService.ErrInvalidMonth) {
			h.logger.Warn("GET /calendar - Invalid month: year=%d, month=%d", year, monthNum)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /calendar - Failed to generate: year=%d, month=%d, error=%v", year, monthNum, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - Generated calendar: year=%d, month=%d, role=%s", year, monthNum, role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
