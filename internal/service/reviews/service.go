package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/easybook/EB-BookingService/internal/infra/storage/review"
)

// Service сервис отзывов о завершенных бронированиях
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create добавляет отзыв клиента о собственном завершенном бронировании
// На одно бронирование допускается ровно один отзыв
func (s *Service) Create(ctx context.Context, customerID, bookingID int64, rating int, comment string) (*domain.Review, error) {
	s.logger.Info("Create: customer=%d reviews booking id=%d rating=%d", customerID, bookingID, rating)

	if !domain.IsValidRating(rating) {
		s.logger.Warn("Create: invalid rating=%d for booking id=%d", rating, bookingID)
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinReviewRating, domain.MaxReviewRating)
	}
	if len(comment) > domain.MaxReviewCommentLength {
		s.logger.Warn("Create: comment too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: comment too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("Create: customer=%d does not own booking id=%d", customerID, bookingID)
		return nil, ErrAccessDenied
	}
	if booking.Status != domain.StatusPast {
		s.logger.Warn("Create: booking id=%d has status=%s, review requires past", bookingID, booking.Status)
		return nil, ErrNotCompleted
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		BookingID:  bookingID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrAlreadyReviewed) {
			s.logger.Warn("Create: booking id=%d already reviewed", bookingID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("Create: failed to create review for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Create - create review: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d created for booking id=%d", review.ID, bookingID)
	return review, nil
}

// GetByBooking получает отзыв по бронированию
func (s *Service) GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	s.logger.Info("GetByBooking: fetching review for booking id=%d", bookingID)

	review, err := s.reviewRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("GetByBooking: no review for booking id=%d", bookingID)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("GetByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	return review, nil
}
