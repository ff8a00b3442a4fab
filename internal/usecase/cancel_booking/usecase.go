package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
)

// UseCase use case для отмены записи
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	userRepo    UserRepository
	notifier    NotifierClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	userRepo UserRepository,
	notifier NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены записи
// Освобождение места в слоте и смена статуса выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: booking id=%d by user=%d role=%s", req.BookingID, req.UserID, req.Role)

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var (
		booking *domain.Booking
		slot    *domain.TimeSlot
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if req.Role != domain.RoleAdmin && booking.CustomerID != req.UserID {
			uc.logger.Warn("CancelBooking: user=%d does not own booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d has status=%s, cannot cancel", req.BookingID, booking.Status)
			return ErrInvalidTransition
		}

		slot, err = uc.slotRepo.GetByID(txCtx, booking.SlotID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to get slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Освобождение не может увести счетчик ниже нуля на живой записи;
		// если увело, это сигнал о рассинхронизации данных, транзакция откатывается
		if err := uc.slotRepo.AdjustCapacity(txCtx, booking.SlotID, -1); err != nil {
			uc.logger.Error("CancelBooking: failed to release capacity for slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusCancel); err != nil {
			uc.logger.Error("CancelBooking: failed to update status for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", req.BookingID)

	uc.sendCancellation(ctx, booking, slot)
	return nil
}

// sendCancellation отправляет клиенту уведомление об отмене
func (uc *UseCase) sendCancellation(ctx context.Context, booking *domain.Booking, slot *domain.TimeSlot) {
	customer, err := uc.userRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to resolve customer=%d for notification: %v", booking.CustomerID, err)
		return
	}

	body := fmt.Sprintf(
		"Hi %s, your appointment on %s at %s has been cancelled.",
		customer.Name, slot.Date.Format(domain.DateFormat), slot.StartTime.Display(),
	)
	uc.notifier.SendBestEffort(ctx, customer.Email, "Appointment cancelled", body)
}
