package modify_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	modifyBooking "github.com/easybook/EB-BookingService/internal/usecase/modify_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidBookingID   = "некорректный идентификатор записи"
	msgBookingNotFound    = "запись не найдена"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotFull           = "в выбранном слоте не осталось свободных мест"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidTransition  = "изменить можно только активную запись"
	msgAccessDenied       = "нет прав на изменение этой записи"
	msgNothingToChange    = "запрос не содержит изменений"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ModifyBookingUseCase
	logger  Logger
}

func NewHandler(useCase ModifyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ModifyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, userID, role))
	if err != nil {
		switch {
		case errors.Is(err, modifyBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, modifyBooking.ErrSlotNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Slot not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, modifyBooking.ErrSlotFull):
			h.logger.Warn("PATCH /bookings/{id} - Slot is full: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, modifyBooking.ErrServiceTypeNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Service type not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, modifyBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id} - Invalid transition: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, modifyBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, modifyBooking.ErrNothingToChange):
			h.logger.Warn("PATCH /bookings/{id} - Nothing to change: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNothingToChange)

		case errors.Is(err, modifyBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to modify: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking modified: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
