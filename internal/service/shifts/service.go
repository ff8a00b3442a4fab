package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	shiftRepo "github.com/easybook/EB-BookingService/internal/infra/storage/shift"
	"github.com/easybook/EB-BookingService/internal/service/shifts/models"
	"github.com/easybook/EB-BookingService/pkg/ptr"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Service сервис управления сменами сотрудников
type Service struct {
	shiftRepo   ShiftRepository
	blockedRepo BlockedDateRepository
	userRepo    UserRepository
	notifier    NotifierClient
	txManager   TransactionManager
	clock       TimeProvider
	logger      Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(
	shiftRepo ShiftRepository,
	blockedRepo BlockedDateRepository,
	userRepo UserRepository,
	notifier NotifierClient,
	txManager TransactionManager,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		shiftRepo:   shiftRepo,
		blockedRepo: blockedRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		txManager:   txManager,
		clock:       clock,
		logger:      logger,
	}
}

// Assign назначает смену сотруднику на дату
// Пересечение с уже существующими сменами сотрудника не проверяется
func (s *Service) Assign(ctx context.Context, employeeID int64, date time.Time, start, end types.TimeString) (*models.ShiftResponse, error) {
	day := date.Format(domain.DateFormat)
	s.logger.Info("Assign: assigning shift to employee=%d date=%s %s-%s", employeeID, day, start, end)

	if !start.IsBefore(end) {
		s.logger.Warn("Assign: invalid time range %s-%s for employee=%d", start, end, employeeID)
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	blocked, err := s.blockedRepo.IsBlocked(ctx, date)
	if err != nil {
		s.logger.Error("Assign: blocked-date check failed for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: Assign - blocked-date check: %v", ErrInternal, err)
	}
	if blocked {
		s.logger.Warn("Assign: date=%s is blocked", day)
		return nil, ErrDateBlocked
	}

	shift, err := s.shiftRepo.Create(ctx, &domain.Shift{
		EmployeeID: employeeID,
		Date:       domain.DateOnly(date),
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		s.logger.Error("Assign: repository error for employee=%d date=%s: %v", employeeID, day, err)
		return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Assign: successfully assigned shift id=%d to employee=%d", shift.ID, employeeID)
	return models.FromDomainShift(shift), nil
}

// GetShiftsForDate получает смены на дату с именами сотрудников
func (s *Service) GetShiftsForDate(ctx context.Context, date time.Time) (*models.DayShiftsResponse, error) {
	s.logger.Info("GetShiftsForDate: fetching shifts for date=%s", date.Format(domain.DateFormat))

	details, err := s.shiftRepo.GetDetailsByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetShiftsForDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetShiftsForDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShiftDetails(details), nil
}

// Delete удаляет смену вместе со всеми запросами на её изменение
// Каскад выполняется вручную в одной транзакции: схема внешним ключом его не закрепляет
func (s *Service) Delete(ctx context.Context, shiftID int64) error {
	s.logger.Info("Delete: deleting shift id=%d", shiftID)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.shiftRepo.DeleteChangeRequestsByShift(ctx, shiftID); err != nil {
			return fmt.Errorf("delete change requests: %w", err)
		}
		if err := s.shiftRepo.Delete(ctx, shiftID); err != nil {
			return fmt.Errorf("delete shift: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Delete: shift id=%d not found", shiftID)
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: transaction failed for shift id=%d: %v", shiftID, err)
		return fmt.Errorf("%w: Delete - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted shift id=%d", shiftID)
	return nil
}

// RequestChange создает запрос сотрудника на изменение смены
// Сотрудник может запросить изменение только своей смены
func (s *Service) RequestChange(ctx context.Context, employeeID, shiftID int64, reqType domain.ChangeRequestType, reason string) error {
	s.logger.Info("RequestChange: employee=%d requests %s for shift id=%d", employeeID, reqType, shiftID)

	switch reqType {
	case domain.ChangeRequestSwap, domain.ChangeRequestCancel, domain.ChangeRequestAdjust:
	default:
		s.logger.Warn("RequestChange: invalid request type=%s", reqType)
		return fmt.Errorf("%w: unknown request type", ErrInvalidInput)
	}
	if len(reason) > domain.MaxChangeReasonLength {
		s.logger.Warn("RequestChange: reason too long for shift id=%d", shiftID)
		return fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}

	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("RequestChange: shift id=%d not found", shiftID)
			return ErrShiftNotFound
		}
		s.logger.Error("RequestChange: repository error for shift id=%d: %v", shiftID, err)
		return fmt.Errorf("%w: RequestChange - repository error: %v", ErrInternal, err)
	}

	if shift.EmployeeID != employeeID {
		s.logger.Warn("RequestChange: employee=%d does not own shift id=%d", employeeID, shiftID)
		return ErrAccessDenied
	}

	if _, err := s.shiftRepo.CreateChangeRequest(ctx, &domain.ShiftChangeRequest{
		EmployeeID:  employeeID,
		ShiftID:     shiftID,
		RequestType: reqType,
		Reason:      reason,
	}); err != nil {
		s.logger.Error("RequestChange: failed to create request for shift id=%d: %v", shiftID, err)
		return fmt.Errorf("%w: RequestChange - create request: %v", ErrInternal, err)
	}

	s.logger.Info("RequestChange: created request for shift id=%d by employee=%d", shiftID, employeeID)
	return nil
}

// UnreadRequests получает непрочитанные запросы на изменение смен для администратора
func (s *Service) UnreadRequests(ctx context.Context) (*models.ChangeRequestListResponse, error) {
	s.logger.Info("UnreadRequests: fetching unread change requests")

	views, err := s.shiftRepo.UnreadChangeRequests(ctx)
	if err != nil {
		s.logger.Error("UnreadRequests: repository error: %v", err)
		return nil, fmt.Errorf("%w: UnreadRequests - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainChangeRequests(views), nil
}

// ResolveRequest помечает запрос прочитанным и отправляет сотруднику уведомление
func (s *Service) ResolveRequest(ctx context.Context, requestID int64) error {
	s.logger.Info("ResolveRequest: resolving request id=%d", requestID)

	req, err := s.shiftRepo.GetChangeRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrRequestNotFound) {
			s.logger.Warn("ResolveRequest: request id=%d not found", requestID)
			return ErrRequestNotFound
		}
		s.logger.Error("ResolveRequest: repository error for request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: ResolveRequest - repository error: %v", ErrInternal, err)
	}

	if err := s.shiftRepo.MarkChangeRequestRead(ctx, requestID); err != nil {
		if errors.Is(err, shiftRepo.ErrRequestNotFound) {
			s.logger.Warn("ResolveRequest: request id=%d not found during update", requestID)
			return ErrRequestNotFound
		}
		s.logger.Error("ResolveRequest: failed to mark request id=%d read: %v", requestID, err)
		return fmt.Errorf("%w: ResolveRequest - mark read: %v", ErrInternal, err)
	}

	s.sendAcknowledgment(ctx, req)

	s.logger.Info("ResolveRequest: successfully resolved request id=%d", requestID)
	return nil
}

// NextShiftDate находит дату ближайшей смены сотрудника начиная с сегодняшнего дня
func (s *Service) NextShiftDate(ctx context.Context, employeeID int64) (*models.NextShiftResponse, error) {
	s.logger.Info("NextShiftDate: fetching next shift for employee=%d", employeeID)

	date, err := s.shiftRepo.NextShiftDate(ctx, employeeID, s.clock.Now())
	if err != nil {
		s.logger.Error("NextShiftDate: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: NextShiftDate - repository error: %v", ErrInternal, err)
	}

	resp := &models.NextShiftResponse{}
	if date != nil {
		resp.Date = ptr.Ptr(date.Format(domain.DateFormat))
	}

	return resp, nil
}

// sendAcknowledgment уведомляет сотрудника о рассмотрении его запроса
// Недоставленное уведомление не ошибка операции
func (s *Service) sendAcknowledgment(ctx context.Context, req *domain.ShiftChangeRequest) {
	employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("ResolveRequest: failed to resolve employee=%d for notification: %v", req.EmployeeID, err)
		return
	}

	body := fmt.Sprintf(
		"Hi %s, your %s request for shift #%d has been reviewed by the administrator.",
		employee.Name, req.RequestType, req.ShiftID,
	)
	s.notifier.SendBestEffort(ctx, employee.Email, "Shift change request reviewed", body)
}
