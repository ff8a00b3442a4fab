package sweep_statuses

import (
	"context"
	"fmt"
)

// Result итог сверки статусов
type Result struct {
	MovedToPast    int64 // записей current -> past
	MovedToCurrent int64 // записей past -> current (слот перенесен в будущее)
}

// UseCase use case сверки статусов записей с часами
// Запускается перед выдачей списков и ежедневным фоновым заданием;
// повторный запуск без прошедшего времени ничего не меняет
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет сверку статусов
// Две независимые идемпотентные операции: завершение записей, чей слот
// уже прошел, и возврат в current записей, чей слот администратор
// перенес обратно в будущее
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()

	moved, err := uc.bookingRepo.MarkPastDue(ctx, now)
	if err != nil {
		uc.logger.Error("SweepStatuses: failed to mark past-due bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to mark past-due bookings: %v", ErrInternal, err)
	}

	revived, err := uc.bookingRepo.RevivePastDue(ctx, now)
	if err != nil {
		uc.logger.Error("SweepStatuses: failed to revive rescheduled bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to revive rescheduled bookings: %v", ErrInternal, err)
	}

	if moved > 0 || revived > 0 {
		uc.logger.Info("SweepStatuses: moved %d bookings to past, %d back to current", moved, revived)
	}

	return &Result{MovedToPast: moved, MovedToCurrent: revived}, nil
}
