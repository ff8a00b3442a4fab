package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/easybook/EB-BookingService/internal/domain"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	typeRepo "github.com/easybook/EB-BookingService/internal/infra/storage/servicetype"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	paymentRepo  PaymentRepository
	typeRepo     ServiceTypeRepository
	userRepo     UserRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	paymentRepo PaymentRepository,
	typeRepo ServiceTypeRepository,
	userRepo UserRepository,
	notifier NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		paymentRepo:  paymentRepo,
		typeRepo:     typeRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Резервирование места в слоте, платежная транзакция и сама запись
// создаются в одной сериализуемой транзакции: конкурирующие записи
// на почти заполненный слот не могут превысить его вместимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, slot=%d, type=%d, payment=%s",
		req.CustomerID, req.SlotID, req.TypeID, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result      *domain.Booking
		slot        *domain.TimeSlot
		serviceType *domain.ServiceType
		transaction *domain.PaymentTransaction
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем лимит активных записей клиента
		count, err := uc.bookingRepo.CountCurrentByCustomer(txCtx, req.CustomerID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings for customer=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
		if count >= domain.MaxActiveBookingsPerCustomer {
			uc.logger.Warn("CreateBooking: customer=%d has %d active bookings, limit reached", req.CustomerID, count)
			return ErrBookingLimitExceeded
		}

		// 2.2. Получаем слот
		slot, err = uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if slot.HasEnded(now) {
			uc.logger.Warn("CreateBooking: slot id=%d is in the past", req.SlotID)
			return ErrSlotInPast
		}

		// 2.3. Получаем услугу для расчета суммы
		serviceType, err = uc.typeRepo.GetByID(txCtx, req.TypeID)
		if err != nil {
			if errors.Is(err, typeRepo.ErrServiceTypeNotFound) {
				uc.logger.Warn("CreateBooking: service type id=%d not found", req.TypeID)
				return ErrServiceTypeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service type id=%d: %v", req.TypeID, err)
			return fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
		}

		// 2.4. Резервируем место в слоте
		if err := uc.slotRepo.AdjustCapacity(txCtx, req.SlotID, 1); err != nil {
			if errors.Is(err, slotRepo.ErrSlotFull) {
				uc.logger.Warn("CreateBooking: slot id=%d is full", req.SlotID)
				return ErrSlotFull
			}
			uc.logger.Error("CreateBooking: failed to reserve capacity for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		// 2.5. Создаем платежную транзакцию
		transaction, err = uc.paymentRepo.Create(txCtx, &domain.PaymentTransaction{
			Reference: uuid.NewString(),
			Amount:    serviceType.Price,
			Method:    req.PaymentMethod,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create payment transaction: %v", err)
			return fmt.Errorf("%w: failed to create payment transaction: %v", ErrInternal, err)
		}

		// 2.6. Создаем запись
		result, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:    req.CustomerID,
			SlotID:        req.SlotID,
			TypeID:        req.TypeID,
			TransactionID: transaction.ID,
			Status:        domain.StatusCurrent,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for customer=%d", result.ID, req.CustomerID)

	// 3. После коммита отправляем подтверждение; недоставка не откатывает запись
	uc.sendConfirmation(ctx, result, slot, serviceType)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		SlotID:        result.SlotID,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		ServiceType:   serviceType.Name,
		Amount:        transaction.Amount,
		PaymentMethod: string(transaction.Method),
		Reference:     transaction.Reference,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}

// sendConfirmation отправляет клиенту подтверждение записи
func (uc *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking, slot *domain.TimeSlot, serviceType *domain.ServiceType) {
	customer, err := uc.userRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve customer=%d for notification: %v", booking.CustomerID, err)
		return
	}

	body := fmt.Sprintf(
		"Hi %s, your %s appointment is booked for %s at %s.",
		customer.Name, serviceType.Name, slot.Date.Format(domain.DateFormat), slot.StartTime.Display(),
	)
	uc.notifier.SendBestEffort(ctx, customer.Email, "Appointment confirmed", body)
}
