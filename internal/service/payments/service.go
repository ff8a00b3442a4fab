package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/easybook/EB-BookingService/internal/domain"
	paymentRepo "github.com/easybook/EB-BookingService/internal/infra/storage/payment"
)

// Service сервис платежных транзакций
// Платежи салон не проводит: онлайн-оплату подтверждает внешний процессор
// через callback, сервис только фиксирует подтверждение по ссылке
type Service struct {
	paymentRepo PaymentRepository
	typeRepo    ServiceTypeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	typeRepo ServiceTypeRepository,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		typeRepo:    typeRepo,
		logger:      logger,
	}
}

// Confirm помечает транзакцию подтвержденной по ссылке из callback процессора
func (s *Service) Confirm(ctx context.Context, reference string) error {
	s.logger.Info("Confirm: confirming transaction reference=%s", reference)

	if strings.TrimSpace(reference) == "" {
		s.logger.Warn("Confirm: empty reference")
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	if err := s.paymentRepo.ConfirmByReference(ctx, reference); err != nil {
		if errors.Is(err, paymentRepo.ErrTransactionNotFound) {
			s.logger.Warn("Confirm: transaction reference=%s not found", reference)
			return ErrTransactionNotFound
		}
		s.logger.Error("Confirm: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: transaction reference=%s confirmed", reference)
	return nil
}

// ListServiceTypes получает каталог услуг с ценами
func (s *Service) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	s.logger.Info("ListServiceTypes: fetching service catalogue")

	serviceTypes, err := s.typeRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServiceTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServiceTypes - repository error: %v", ErrInternal, err)
	}

	return serviceTypes, nil
}
