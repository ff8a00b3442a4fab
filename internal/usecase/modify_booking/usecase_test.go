package modify_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	typeRepo "github.com/easybook/EB-BookingService/internal/infra/storage/servicetype"
	"github.com/easybook/EB-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	updated bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateSlotAndType(_ context.Context, _, slotID, typeID int64) error {
	f.booking.SlotID = slotID
	f.booking.TypeID = typeID
	f.updated = true
	return nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeSlotRepo) AdjustCapacity(_ context.Context, id int64, delta int) error {
	slot := f.slots[id]
	next := slot.CurrentBookings + delta
	if next > slot.MaxBookings {
		return slotRepo.ErrSlotFull
	}
	if next < 0 {
		return slotRepo.ErrCapacityViolation
	}
	slot.CurrentBookings = next
	return nil
}

type fakePaymentRepo struct {
	transaction *domain.PaymentTransaction
	updates     int
}

func (f *fakePaymentRepo) GetByID(_ context.Context, _ int64) (*domain.PaymentTransaction, error) {
	return f.transaction, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, _ int64, amount float64, method domain.PaymentMethod) error {
	f.transaction.Amount = amount
	f.transaction.Method = method
	f.updates++
	return nil
}

type fakeTypeRepo struct {
	types map[int64]*domain.ServiceType
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id int64) (*domain.ServiceType, error) {
	st, ok := f.types[id]
	if !ok {
		return nil, typeRepo.ErrServiceTypeNotFound
	}
	return st, nil
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
	payments *fakePaymentRepo
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:            5,
		CustomerID:    1,
		SlotID:        10,
		TypeID:        100,
		TransactionID: 200,
		Status:        domain.StatusCurrent,
	}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.TimeSlot{
		10: {ID: 10, Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), StartTime: "14:00", EndTime: "14:30", MaxBookings: 2, CurrentBookings: 1},
		11: {ID: 11, Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "09:30", MaxBookings: 2, CurrentBookings: 0},
		12: {ID: 12, Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "10:30", MaxBookings: 2, CurrentBookings: 2},
	}}
	payments := &fakePaymentRepo{transaction: &domain.PaymentTransaction{
		ID:     200,
		Amount: 40,
		Method: domain.PaymentOnline,
	}}
	typesRepo := &fakeTypeRepo{types: map[int64]*domain.ServiceType{
		100: {ID: 100, Name: "Haircut", Price: 40},
		101: {ID: 101, Name: "Coloring", Price: 90},
	}}

	uc := NewUseCase(bookings, slots, payments, typesRepo, fakeTxManager{}, nopLogger{})
	return &fixture{uc: uc, bookings: bookings, slots: slots, payments: payments}
}

func ownerRequest() *Request {
	return &Request{BookingID: 5, UserID: 1, Role: domain.RoleCustomer}
}

func TestExecute_MoveToAnotherSlot(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.NewSlotID = ptr.Ptr(int64(11))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.SlotID)
	assert.Equal(t, 1, f.slots.slots[11].CurrentBookings)
	assert.Equal(t, 0, f.slots.slots[10].CurrentBookings)
	assert.True(t, f.bookings.updated)
	// Same service, same method: transaction untouched
	assert.Equal(t, 0, f.payments.updates)
}

func TestExecute_MoveToFullSlotKeepsOldReservation(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.NewSlotID = ptr.Ptr(int64(12))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotFull)

	// New slot reserved first; its failure leaves the old reservation in place
	assert.Equal(t, 1, f.slots.slots[10].CurrentBookings)
	assert.Equal(t, 2, f.slots.slots[12].CurrentBookings)
	assert.False(t, f.bookings.updated)
}

func TestExecute_ChangeServiceReprices(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.NewTypeID = ptr.Ptr(int64(101))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Coloring", resp.ServiceType)
	assert.Equal(t, 90.0, resp.Amount)
	assert.Equal(t, 1, f.payments.updates)
	// Slot unchanged, no capacity movement
	assert.Equal(t, 1, f.slots.slots[10].CurrentBookings)
}

func TestExecute_ChangePaymentMethodOnly(t *testing.T) {
	f := newFixture()

	method := domain.PaymentInStore
	req := ownerRequest()
	req.NewPaymentMethod = &method

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentInStore), resp.PaymentMethod)
	assert.Equal(t, 40.0, resp.Amount)
	assert.Equal(t, 1, f.payments.updates)
	assert.False(t, f.bookings.updated)
}

func TestExecute_NothingToChange(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), ownerRequest())
	assert.ErrorIs(t, err, ErrNothingToChange)
}

func TestExecute_StrangerDenied(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.UserID = 2
	req.NewSlotID = ptr.Ptr(int64(11))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, f.slots.slots[11].CurrentBookings)
}

func TestExecute_AdminModifiesAnyBooking(t *testing.T) {
	f := newFixture()

	req := &Request{BookingID: 5, UserID: 99, Role: domain.RoleAdmin, NewSlotID: ptr.Ptr(int64(11))}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_CustomerCannotModifyFinishedBooking(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "past booking", status: domain.StatusPast},
		{name: "cancelled booking", status: domain.StatusCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.bookings.booking.Status = tt.status

			req := ownerRequest()
			req.NewSlotID = ptr.Ptr(int64(11))

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, 0, f.slots.slots[11].CurrentBookings)
		})
	}
}

func TestExecute_AdminMovesPastBookingToFutureSlot(t *testing.T) {
	f := newFixture()
	f.bookings.booking.Status = domain.StatusPast

	req := &Request{BookingID: 5, UserID: 99, Role: domain.RoleAdmin, NewSlotID: ptr.Ptr(int64(11))}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// The booking lands on the future slot; the status sweep revives it to current
	assert.Equal(t, int64(11), resp.SlotID)
	assert.Equal(t, 1, f.slots.slots[11].CurrentBookings)
	assert.Equal(t, 0, f.slots.slots[10].CurrentBookings)
	assert.True(t, f.bookings.updated)
}

func TestExecute_AdminCannotModifyCancelledBooking(t *testing.T) {
	f := newFixture()
	f.bookings.booking.Status = domain.StatusCancel

	req := &Request{BookingID: 5, UserID: 99, Role: domain.RoleAdmin, NewSlotID: ptr.Ptr(int64(11))}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_TargetSlotNotFound(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.NewSlotID = ptr.Ptr(int64(99))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_TargetServiceNotFound(t *testing.T) {
	f := newFixture()

	req := ownerRequest()
	req.NewTypeID = ptr.Ptr(int64(999))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}
