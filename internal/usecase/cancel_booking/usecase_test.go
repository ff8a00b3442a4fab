package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	updatedStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeSlotRepo struct {
	slot      *domain.TimeSlot
	adjustErr error
}

func (f *fakeSlotRepo) GetByID(_ context.Context, _ int64) (*domain.TimeSlot, error) {
	return f.slot, nil
}

func (f *fakeSlotRepo) AdjustCapacity(_ context.Context, _ int64, delta int) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	f.slot.CurrentBookings += delta
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return &domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"}, nil
}

type fakeNotifier struct {
	sent int
}

func (f *fakeNotifier) SendBestEffort(_ context.Context, _, _, _ string) {
	f.sent++
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	slots    *fakeSlotRepo
	notifier *fakeNotifier
}

func newFixture(status domain.BookingStatus) *fixture {
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:         5,
		CustomerID: 1,
		SlotID:     10,
		Status:     status,
	}}
	slots := &fakeSlotRepo{slot: &domain.TimeSlot{
		ID:              10,
		Date:            time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		EndTime:         "14:30",
		MaxBookings:     2,
		CurrentBookings: 1,
	}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(bookings, slots, fakeUserRepo{}, notifier, fakeTxManager{}, nopLogger{})
	return &fixture{uc: uc, bookings: bookings, slots: slots, notifier: notifier}
}

func TestExecute_OwnerCancels(t *testing.T) {
	f := newFixture(domain.StatusCurrent)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 1, Role: domain.RoleCustomer})
	require.NoError(t, err)

	require.NotNil(t, f.bookings.updatedStatus)
	assert.Equal(t, domain.StatusCancel, *f.bookings.updatedStatus)
	assert.Equal(t, 0, f.slots.slot.CurrentBookings)
	assert.Equal(t, 1, f.notifier.sent)
}

func TestExecute_AdminCancelsAnyBooking(t *testing.T) {
	f := newFixture(domain.StatusCurrent)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 99, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 0, f.slots.slot.CurrentBookings)
}

func TestExecute_StrangerDenied(t *testing.T) {
	f := newFixture(domain.StatusCurrent)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 2, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, f.bookings.updatedStatus)
	assert.Equal(t, 1, f.slots.slot.CurrentBookings)
	assert.Equal(t, 0, f.notifier.sent)
}

func TestExecute_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "past booking", status: domain.StatusPast},
		{name: "already cancelled", status: domain.StatusCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status)

			err := f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 1, Role: domain.RoleCustomer})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, f.bookings.updatedStatus)
		})
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(domain.StatusCurrent)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 99, UserID: 1, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CapacityViolationAborts(t *testing.T) {
	f := newFixture(domain.StatusCurrent)
	f.slots.adjustErr = assert.AnError

	err := f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 1, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, f.bookings.updatedStatus)
	assert.Equal(t, 0, f.notifier.sent)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(domain.StatusCurrent)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.uc.Execute(context.Background(), &Request{BookingID: 5, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
