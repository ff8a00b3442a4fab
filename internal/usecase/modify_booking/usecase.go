package modify_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	typeRepo "github.com/easybook/EB-BookingService/internal/infra/storage/servicetype"
)

// UseCase use case для изменения записи: перенос на другой слот,
// смена услуги и способа оплаты
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	paymentRepo PaymentRepository
	typeRepo    ServiceTypeRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	paymentRepo PaymentRepository,
	typeRepo ServiceTypeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		paymentRepo: paymentRepo,
		typeRepo:    typeRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения записи
// Перенос на другой слот резервирует место в новом слоте и освобождает
// старое в одной транзакции: если новый слот заполнен, изменение
// целиком откатывается и резерв в старом слоте сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModifyBooking: booking id=%d by user=%d role=%s", req.BookingID, req.UserID, req.Role)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ModifyBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		slot        *domain.TimeSlot
		serviceType *domain.ServiceType
		transaction *domain.PaymentTransaction
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ModifyBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ModifyBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if req.Role != domain.RoleAdmin && booking.CustomerID != req.UserID {
			uc.logger.Warn("ModifyBooking: user=%d does not own booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeModifiedBy(req.Role) {
			uc.logger.Warn("ModifyBooking: booking id=%d has status=%s, cannot modify", req.BookingID, booking.Status)
			return ErrInvalidTransition
		}

		// Итоговые слот и услуга после применения изменений
		targetSlotID := booking.SlotID
		if req.NewSlotID != nil {
			targetSlotID = *req.NewSlotID
		}
		targetTypeID := booking.TypeID
		if req.NewTypeID != nil {
			targetTypeID = *req.NewTypeID
		}

		slot, err = uc.slotRepo.GetByID(txCtx, targetSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ModifyBooking: slot id=%d not found", targetSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ModifyBooking: failed to get slot id=%d: %v", targetSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		serviceType, err = uc.typeRepo.GetByID(txCtx, targetTypeID)
		if err != nil {
			if errors.Is(err, typeRepo.ErrServiceTypeNotFound) {
				uc.logger.Warn("ModifyBooking: service type id=%d not found", targetTypeID)
				return ErrServiceTypeNotFound
			}
			uc.logger.Error("ModifyBooking: failed to get service type id=%d: %v", targetTypeID, err)
			return fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
		}

		// Перенос на другой слот: сначала резерв нового места,
		// затем освобождение старого
		if targetSlotID != booking.SlotID {
			if err := uc.slotRepo.AdjustCapacity(txCtx, targetSlotID, 1); err != nil {
				if errors.Is(err, slotRepo.ErrSlotFull) {
					uc.logger.Warn("ModifyBooking: slot id=%d is full", targetSlotID)
					return ErrSlotFull
				}
				uc.logger.Error("ModifyBooking: failed to reserve capacity for slot id=%d: %v", targetSlotID, err)
				return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
			}
			if err := uc.slotRepo.AdjustCapacity(txCtx, booking.SlotID, -1); err != nil {
				uc.logger.Error("ModifyBooking: failed to release capacity for slot id=%d: %v", booking.SlotID, err)
				return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
			}
		}

		if targetSlotID != booking.SlotID || targetTypeID != booking.TypeID {
			if err := uc.bookingRepo.UpdateSlotAndType(txCtx, req.BookingID, targetSlotID, targetTypeID); err != nil {
				uc.logger.Error("ModifyBooking: failed to update booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
		}

		// Платежная транзакция: смена услуги пересчитывает сумму,
		// смена способа оплаты фиксируется в той же записи
		transaction, err = uc.paymentRepo.GetByID(txCtx, booking.TransactionID)
		if err != nil {
			uc.logger.Error("ModifyBooking: failed to get transaction id=%d: %v", booking.TransactionID, err)
			return fmt.Errorf("%w: failed to get transaction: %v", ErrInternal, err)
		}

		targetMethod := transaction.Method
		if req.NewPaymentMethod != nil {
			targetMethod = *req.NewPaymentMethod
		}

		if serviceType.Price != transaction.Amount || targetMethod != transaction.Method {
			if err := uc.paymentRepo.Update(txCtx, transaction.ID, serviceType.Price, targetMethod); err != nil {
				uc.logger.Error("ModifyBooking: failed to update transaction id=%d: %v", transaction.ID, err)
				return fmt.Errorf("%w: failed to update transaction: %v", ErrInternal, err)
			}
			transaction.Amount = serviceType.Price
			transaction.Method = targetMethod
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ModifyBooking: successfully modified booking id=%d", req.BookingID)

	return &Response{
		ID:            req.BookingID,
		SlotID:        slot.ID,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		ServiceType:   serviceType.Name,
		Amount:        transaction.Amount,
		PaymentMethod: string(transaction.Method),
	}, nil
}
