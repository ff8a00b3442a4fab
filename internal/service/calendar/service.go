package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/internal/service/calendar/models"
)

// Service сервис генерации календарной сетки
// Одна реализация на все роли; различия ролей вынесены в DayClassifier
type Service struct {
	blockedRepo BlockedDateRepository
	shiftRepo   ShiftRepository
	clock       TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	blockedRepo BlockedDateRepository,
	shiftRepo ShiftRepository,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		shiftRepo:   shiftRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Generate строит сетку месяца для роли пользователя
// Для сотрудника userID определяет, чьи смены раскрашивают дни;
// для администратора и клиента смены не запрашиваются
func (s *Service) Generate(ctx context.Context, role domain.Role, userID int64, year int, month time.Month) (*models.MonthView, error) {
	s.logger.Info("Generate: building calendar year=%d month=%d role=%s user=%d", year, month, role, userID)

	if year < 1 || month < time.January || month > time.December {
		s.logger.Warn("Generate: invalid year=%d month=%d", year, month)
		return nil, ErrInvalidMonth
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Явный переход декабрь -> январь для границы диапазона
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	next := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := next.AddDate(0, 0, -1).Day()

	cc, err := s.buildContext(ctx, role, userID, first, next)
	if err != nil {
		return nil, err
	}

	classifier := s.classifierFor(role)

	// Сетка начинается с воскресенья; time.Weekday уже нумерует
	// воскресенье нулём, дополнительного сдвига не нужно
	weeks := make([]domain.Week, 0, 6)
	var week domain.Week
	col := int(first.Weekday())

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		week[col] = domain.DayCell{
			Day:   day,
			Date:  date.Format(domain.DateFormat),
			Class: classifier.Classify(date, cc),
		}
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = domain.Week{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	s.logger.Info("Generate: built %d weeks for year=%d month=%d", len(weeks), year, month)
	return &models.MonthView{
		Year:  year,
		Month: int(month),
		Weeks: weeks,
	}, nil
}

// BusinessHoursFor возвращает рабочие часы для даты
func (s *Service) BusinessHoursFor(date time.Time) domain.BusinessHours {
	return domain.BusinessHoursFor(date)
}

// buildContext выбирает данные месяца: блокировки одним запросом,
// смены сотрудника одним запросом
func (s *Service) buildContext(ctx context.Context, role domain.Role, userID int64, from, to time.Time) (ClassifyContext, error) {
	cc := ClassifyContext{Now: s.clock.Now()}

	blocked, err := s.blockedRepo.GetForRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Generate: failed to fetch blocked dates for %s: %v", from.Format(domain.DateFormat), err)
		return cc, fmt.Errorf("%w: Generate - fetch blocked dates: %v", ErrInternal, err)
	}
	cc.Blocked = blocked

	if role != domain.RoleEmployee {
		return cc, nil
	}

	shifts, err := s.shiftRepo.GetForEmployeeInRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("Generate: failed to fetch shifts for employee=%d: %v", userID, err)
		return cc, fmt.Errorf("%w: Generate - fetch shifts: %v", ErrInternal, err)
	}

	cc.Shifts = make(map[string]*domain.Shift, len(shifts))
	for _, shift := range shifts {
		cc.Shifts[shift.Date.Format(domain.DateFormat)] = shift
	}

	return cc, nil
}

func (s *Service) classifierFor(role domain.Role) DayClassifier {
	if role == domain.RoleEmployee {
		return EmployeeClassifier{}
	}
	return AdminClassifier{}
}
