package reviews

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/easybook/EB-BookingService/internal/infra/storage/review"
)

type fakeReviewRepo struct {
	byBooking map[int64]*domain.Review
	nextID    int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byBooking: map[int64]*domain.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if _, ok := f.byBooking[review.BookingID]; ok {
		return nil, reviewRepo.ErrAlreadyReviewed
	}
	f.nextID++
	review.ID = f.nextID
	f.byBooking[review.BookingID] = review
	return review, nil
}

func (f *fakeReviewRepo) GetByBookingID(_ context.Context, bookingID int64) (*domain.Review, error) {
	review, ok := f.byBooking[bookingID]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return review, nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(status domain.BookingStatus) (*Service, *fakeReviewRepo) {
	reviews := newFakeReviewRepo()
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:         5,
		CustomerID: 1,
		Status:     status,
	}}
	return NewService(reviews, bookings, nopLogger{}), reviews
}

func TestCreate_Success(t *testing.T) {
	svc, repo := newService(domain.StatusPast)

	review, err := svc.Create(context.Background(), 1, 5, 5, "great haircut")
	require.NoError(t, err)

	assert.Equal(t, int64(5), review.BookingID)
	assert.Equal(t, 5, review.Rating)
	assert.Len(t, repo.byBooking, 1)
}

func TestCreate_RatingValidation(t *testing.T) {
	svc, _ := newService(domain.StatusPast)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), 1, 5, rating, "")
		assert.ErrorIs(t, err, ErrInvalidInput, "rating %d should be rejected", rating)
	}
}

func TestCreate_CommentTooLong(t *testing.T) {
	svc, _ := newService(domain.StatusPast)

	comment := strings.Repeat("a", domain.MaxReviewCommentLength+1)
	_, err := svc.Create(context.Background(), 1, 5, 4, comment)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_OnlyCompletedBookings(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "current booking", status: domain.StatusCurrent},
		{name: "cancelled booking", status: domain.StatusCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(tt.status)

			_, err := svc.Create(context.Background(), 1, 5, 4, "")
			assert.ErrorIs(t, err, ErrNotCompleted)
		})
	}
}

func TestCreate_ForeignBookingDenied(t *testing.T) {
	svc, _ := newService(domain.StatusPast)

	_, err := svc.Create(context.Background(), 2, 5, 4, "")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_BookingNotFound(t *testing.T) {
	svc, _ := newService(domain.StatusPast)

	_, err := svc.Create(context.Background(), 1, 99, 4, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate_DuplicateRejected(t *testing.T) {
	svc, _ := newService(domain.StatusPast)

	_, err := svc.Create(context.Background(), 1, 5, 4, "first")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 1, 5, 5, "second")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestGetByBooking(t *testing.T) {
	svc, repo := newService(domain.StatusPast)

	t.Run("missing review", func(t *testing.T) {
		_, err := svc.GetByBooking(context.Background(), 5)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("existing review", func(t *testing.T) {
		repo.byBooking[5] = &domain.Review{ID: 1, BookingID: 5, Rating: 4}

		review, err := svc.GetByBooking(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
	})
}
