package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	reviewsService "github.com/easybook/EB-BookingService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "можно оценить только собственное бронирование"
	msgNotCompleted       = "отзыв доступен только для завершенного бронирования"
	msgAlreadyReviewed    = "отзыв на это бронирование уже оставлен"
	msgInvalidInput       = "некорректные данные отзыва"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/reviews - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), customerID, bookingID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviewsService.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/reviews - Access denied: booking_id=%d, customer_id=%d", bookingID, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reviewsService.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not completed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotCompleted)

		case errors.Is(err, reviewsService.ErrAlreadyReviewed):
			h.logger.Warn("POST /bookings/{id}/reviews - Already reviewed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		case errors.Is(err, reviewsService.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/reviews - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reviews - Review created: review_id=%d, booking_id=%d", review.ID, bookingID)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(review))
}
