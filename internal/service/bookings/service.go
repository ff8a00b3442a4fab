package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	"github.com/easybook/EB-BookingService/internal/service/bookings/models"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Service сервис списков записей
// Перед каждой выдачей запускает сверку статусов, чтобы списки
// отражали фактическое положение записей относительно часов
type Service struct {
	bookingRepo BookingRepository
	shiftRepo   ShiftRepository
	sweeper     StatusSweeper
	logger      Logger
}

// NewService создает новый экземпляр сервиса списков записей
func NewService(
	bookingRepo BookingRepository,
	shiftRepo ShiftRepository,
	sweeper StatusSweeper,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		shiftRepo:   shiftRepo,
		sweeper:     sweeper,
		logger:      logger,
	}
}

// GetCustomerBookings получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", customerID, status)

	var domainStatus *domain.BookingStatus
	if status != nil {
		converted, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	if _, err := s.sweeper.Execute(ctx); err != nil {
		s.logger.Error("GetCustomerBookings: status sweep failed: %v", err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - status sweep: %v", ErrInternal, err)
	}

	list, err := s.bookingRepo.GetByCustomer(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(list), customerID)
	return models.FromDomainBookingList(list), nil
}

// GetDayView получает дневной обзор администратора: записи и смены на дату
// Опциональное окно start/end сужает выдачу до одной смены
func (s *Service) GetDayView(ctx context.Context, date time.Time, windowStart, windowEnd *types.TimeString) (*models.DayViewResponse, error) {
	day := date.Format(domain.DateFormat)
	s.logger.Info("GetDayView: fetching day view for date=%s", day)

	var window *bookingRepo.TimeWindow
	if windowStart != nil && windowEnd != nil {
		if !windowStart.IsBefore(*windowEnd) {
			s.logger.Warn("GetDayView: invalid window %s-%s", *windowStart, *windowEnd)
			return nil, fmt.Errorf("%w: window start must be before end", ErrInvalidInput)
		}
		window = &bookingRepo.TimeWindow{Start: *windowStart, End: *windowEnd}
	}

	if _, err := s.sweeper.Execute(ctx); err != nil {
		s.logger.Error("GetDayView: status sweep failed: %v", err)
		return nil, fmt.Errorf("%w: GetDayView - status sweep: %v", ErrInternal, err)
	}

	details, err := s.bookingRepo.GetDetailsByDate(ctx, date, window)
	if err != nil {
		s.logger.Error("GetDayView: failed to fetch bookings for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: GetDayView - fetch bookings: %v", ErrInternal, err)
	}

	shifts, err := s.shiftRepo.GetDetailsByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDayView: failed to fetch shifts for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: GetDayView - fetch shifts: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayView: date=%s bookings=%d shifts=%d", day, len(details), len(shifts))
	return models.FromDomainDayView(date, details, shifts), nil
}
