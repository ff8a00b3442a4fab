package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	"github.com/easybook/EB-BookingService/internal/service/slots/models"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Service сервис управления временными слотами
type Service struct {
	slotRepo    SlotRepository
	blockedRepo BlockedDateRepository
	clock       TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	blockedRepo BlockedDateRepository,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		blockedRepo: blockedRepo,
		clock:       clock,
		logger:      logger,
	}
}

// GetAvailableSlots получает свободные слоты на дату, отсортированные по времени начала
// Для сегодняшней даты дополнительно отбрасывает слоты, чье время начала уже прошло
func (s *Service) GetAvailableSlots(ctx context.Context, date time.Time) (*models.SlotListResponse, error) {
	s.logger.Info("GetAvailableSlots: fetching slots for date=%s", date.Format(domain.DateFormat))

	available, err := s.slotRepo.GetAvailableByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetAvailableSlots: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	now := s.clock.Now()
	if domain.DateOnly(date).Equal(domain.DateOnly(now)) {
		nowTime := types.NewTimeString(now)
		upcoming := available[:0]
		for _, slot := range available {
			if slot.StartTime.IsBefore(nowTime) {
				continue
			}
			upcoming = append(upcoming, slot)
		}
		available = upcoming
	}

	s.logger.Info("GetAvailableSlots: %d slots available for date=%s", len(available), date.Format(domain.DateFormat))
	return models.FromDomainSlotList(available), nil
}

// GetSlotsForDate получает все слоты на дату, включая заполненные
func (s *Service) GetSlotsForDate(ctx context.Context, date time.Time) (*models.SlotListResponse, error) {
	s.logger.Info("GetSlotsForDate: fetching slots for date=%s", date.Format(domain.DateFormat))

	all, err := s.slotRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetSlotsForDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetSlotsForDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(all), nil
}

// GenerateDefaultSlots генерирует 30-минутные слоты на дату по часам работы салона
// Идемпотентна: уже существующие пары дата/время начала пропускаются, а не дублируются
func (s *Service) GenerateDefaultSlots(ctx context.Context, date time.Time) (*models.GenerateResult, error) {
	day := date.Format(domain.DateFormat)
	s.logger.Info("GenerateDefaultSlots: generating slots for date=%s", day)

	blocked, err := s.blockedRepo.IsBlocked(ctx, date)
	if err != nil {
		s.logger.Error("GenerateDefaultSlots: blocked-date check failed for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: GenerateDefaultSlots - blocked-date check: %v", ErrInternal, err)
	}
	if blocked {
		s.logger.Warn("GenerateDefaultSlots: date=%s is blocked", day)
		return nil, ErrDateBlocked
	}

	existing, err := s.slotRepo.ExistingStartTimes(ctx, date)
	if err != nil {
		s.logger.Error("GenerateDefaultSlots: failed to fetch existing slots for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: GenerateDefaultSlots - fetch existing slots: %v", ErrInternal, err)
	}

	hours := domain.BusinessHoursFor(date)
	result := &models.GenerateResult{}

	for start := hours.Open; start.IsBefore(hours.Close); {
		end, err := start.AddMinutes(domain.DefaultSlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: GenerateDefaultSlots - compute slot end: %v", ErrInternal, err)
		}
		if end.IsAfter(hours.Close) {
			break
		}

		if _, ok := existing[start]; ok {
			result.Skipped++
		} else {
			_, err := s.slotRepo.Create(ctx, &domain.TimeSlot{
				Date:        domain.DateOnly(date),
				StartTime:   start,
				EndTime:     end,
				MaxBookings: domain.DefaultMaxBookingsPerSlot,
			})
			if err != nil {
				s.logger.Error("GenerateDefaultSlots: failed to create slot %s %s: %v", day, start, err)
				return nil, fmt.Errorf("%w: GenerateDefaultSlots - create slot: %v", ErrInternal, err)
			}
			result.Added++
		}

		start = end
	}

	s.logger.Info("GenerateDefaultSlots: date=%s added=%d skipped=%d", day, result.Added, result.Skipped)
	return result, nil
}

// DeleteSlot удаляет слот; слот с активными записями удалить нельзя
func (s *Service) DeleteSlot(ctx context.Context, slotID int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("DeleteSlot: slot id=%d not found", slotID)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotInUse):
			s.logger.Warn("DeleteSlot: slot id=%d has active bookings", slotID)
			return ErrSlotInUse
		default:
			s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", slotID)
	return nil
}
