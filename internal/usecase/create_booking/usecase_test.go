package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	typeRepo "github.com/easybook/EB-BookingService/internal/infra/storage/servicetype"
)

type fakeBookingRepo struct {
	activeCount int
	created     []*domain.Booking
	nextID      int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) CountCurrentByCustomer(_ context.Context, _ int64) (int, error) {
	return f.activeCount, nil
}

type fakeSlotRepo struct {
	slot        *domain.TimeSlot
	adjustErr   error
	adjustCalls int
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) AdjustCapacity(_ context.Context, _ int64, delta int) error {
	f.adjustCalls++
	if f.adjustErr != nil {
		return f.adjustErr
	}
	f.slot.CurrentBookings += delta
	return nil
}

type fakePaymentRepo struct {
	created []*domain.PaymentTransaction
	nextID  int64
}

func (f *fakePaymentRepo) Create(_ context.Context, tr *domain.PaymentTransaction) (*domain.PaymentTransaction, error) {
	f.nextID++
	tr.ID = f.nextID
	f.created = append(f.created, tr)
	return tr, nil
}

type fakeTypeRepo struct {
	serviceType *domain.ServiceType
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id int64) (*domain.ServiceType, error) {
	if f.serviceType == nil || f.serviceType.ID != id {
		return nil, typeRepo.ErrServiceTypeNotFound
	}
	return f.serviceType, nil
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) SendBestEffort(_ context.Context, recipient, _, _ string) {
	f.sent = append(f.sent, recipient)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
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
	notifier *fakeNotifier
}

func newFixture(now time.Time) *fixture {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotRepo{slot: &domain.TimeSlot{
		ID:          10,
		Date:        time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "14:30",
		MaxBookings: 2,
	}}
	payments := &fakePaymentRepo{}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		bookings,
		slots,
		payments,
		&fakeTypeRepo{serviceType: &domain.ServiceType{ID: 5, Name: "Haircut", Price: 40}},
		&fakeUserRepo{user: &domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"}},
		notifier,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: now}

	return &fixture{uc: uc, bookings: bookings, slots: slots, payments: payments, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		CustomerID:    1,
		SlotID:        10,
		TypeID:        5,
		PaymentMethod: domain.PaymentOnline,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Haircut", resp.ServiceType)
	assert.Equal(t, 40.0, resp.Amount)
	assert.Equal(t, string(domain.StatusCurrent), resp.Status)
	assert.NotEmpty(t, resp.Reference)

	// Capacity reserved, transaction priced from the catalogue
	assert.Equal(t, 1, f.slots.slot.CurrentBookings)
	require.Len(t, f.payments.created, 1)
	assert.Equal(t, 40.0, f.payments.created[0].Amount)
	assert.Equal(t, domain.PaymentOnline, f.payments.created[0].Method)

	// Confirmation goes out after commit
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "anna@example.com", f.notifier.sent[0])
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "missing slot", mutate: func(r *Request) { r.SlotID = 0 }},
		{name: "missing type", mutate: func(r *Request) { r.TypeID = -1 }},
		{name: "unknown payment method", mutate: func(r *Request) { r.PaymentMethod = "cash" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, f.bookings.created)
}

func TestExecute_BookingLimitExceeded(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	f.bookings.activeCount = domain.MaxActiveBookingsPerCustomer

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingLimitExceeded)
	assert.Equal(t, 0, f.slots.adjustCalls)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_UnderLimitAllows(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	f.bookings.activeCount = domain.MaxActiveBookingsPerCustomer - 1

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_SlotNotFound(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.SlotID = 99

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotInPast(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.Equal(t, 0, f.slots.adjustCalls)
}

func TestExecute_SlotFull(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	f.slots.adjustErr = slotRepo.ErrSlotFull

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Empty(t, f.payments.created)
	assert.Empty(t, f.bookings.created)
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_ServiceTypeNotFound(t *testing.T) {
	f := newFixture(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.TypeID = 42

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
	assert.Equal(t, 0, f.slots.adjustCalls)
}
