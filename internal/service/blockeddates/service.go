package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

// Service сервис блокировки дат администратором
type Service struct {
	blockedRepo BlockedDateRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировки дат
func NewService(blockedRepo BlockedDateRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Toggle переключает блокировку даты; возвращает итоговое состояние
func (s *Service) Toggle(ctx context.Context, date time.Time, adminID int64) (bool, error) {
	day := date.Format(domain.DateFormat)
	s.logger.Info("Toggle: toggling blocked date=%s by admin=%d", day, adminID)

	blocked, err := s.blockedRepo.IsBlocked(ctx, date)
	if err != nil {
		s.logger.Error("Toggle: blocked-date check failed for date=%s: %v", day, err)
		return false, fmt.Errorf("%w: Toggle - blocked-date check: %v", ErrInternal, err)
	}

	if blocked {
		if err := s.blockedRepo.Unblock(ctx, date); err != nil {
			s.logger.Error("Toggle: failed to unblock date=%s: %v", day, err)
			return false, fmt.Errorf("%w: Toggle - unblock: %v", ErrInternal, err)
		}
		s.logger.Info("Toggle: date=%s unblocked", day)
		return false, nil
	}

	if err := s.blockedRepo.Block(ctx, date, adminID); err != nil {
		s.logger.Error("Toggle: failed to block date=%s: %v", day, err)
		return false, fmt.Errorf("%w: Toggle - block: %v", ErrInternal, err)
	}
	s.logger.Info("Toggle: date=%s blocked", day)
	return true, nil
}
