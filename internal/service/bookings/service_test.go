package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	bookingRepo "github.com/easybook/EB-BookingService/internal/infra/storage/booking"
	"github.com/easybook/EB-BookingService/internal/usecase/sweep_statuses"
	"github.com/easybook/EB-BookingService/pkg/ptr"
	"github.com/easybook/EB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings     []*domain.Booking
	details      []*domain.BookingDetails
	lastStatus   *domain.BookingStatus
	lastWindow   *bookingRepo.TimeWindow
	detailsCalls int
}

func (f *fakeBookingRepo) GetByCustomer(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	if status == nil {
		return f.bookings, nil
	}
	var filtered []*domain.Booking
	for _, b := range f.bookings {
		if b.Status == *status {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (f *fakeBookingRepo) GetDetailsByDate(_ context.Context, _ time.Time, window *bookingRepo.TimeWindow) ([]*domain.BookingDetails, error) {
	f.detailsCalls++
	f.lastWindow = window
	return f.details, nil
}

type fakeShiftRepo struct {
	details []*domain.ShiftDetails
}

func (f *fakeShiftRepo) GetDetailsByDate(_ context.Context, _ time.Time) ([]*domain.ShiftDetails, error) {
	return f.details, nil
}

type fakeSweeper struct {
	calls int
	err   error
}

func (f *fakeSweeper) Execute(_ context.Context) (*sweep_statuses.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &sweep_statuses.Result{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetCustomerBookings_SweepsBeforeListing(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CustomerID: 1, Status: domain.StatusCurrent},
		{ID: 2, CustomerID: 1, Status: domain.StatusPast},
	}}
	sweeper := &fakeSweeper{}
	svc := NewService(repo, &fakeShiftRepo{}, sweeper, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, sweeper.calls)
	assert.Len(t, resp.Bookings, 2)
	assert.Nil(t, repo.lastStatus)
}

func TestGetCustomerBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CustomerID: 1, Status: domain.StatusCurrent},
		{ID: 2, CustomerID: 1, Status: domain.StatusPast},
		{ID: 3, CustomerID: 1, Status: domain.StatusCancel},
	}}
	svc := NewService(repo, &fakeShiftRepo{}, &fakeSweeper{}, nopLogger{})

	resp, err := svc.GetCustomerBookings(context.Background(), 1, ptr.Ptr("past"))
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeShiftRepo{}, &fakeSweeper{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), 1, ptr.Ptr("pending"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerBookings_SweepFailure(t *testing.T) {
	sweeper := &fakeSweeper{err: assert.AnError}
	svc := NewService(&fakeBookingRepo{}, &fakeShiftRepo{}, sweeper, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetDayView_CombinesBookingsAndShifts(t *testing.T) {
	repo := &fakeBookingRepo{details: []*domain.BookingDetails{
		{BookingID: 1, StartTime: "09:00", EndTime: "09:30", CustomerName: "Anna", ServiceType: "Haircut", PaymentMethod: domain.PaymentOnline, Status: domain.StatusCurrent},
	}}
	shifts := &fakeShiftRepo{details: []*domain.ShiftDetails{
		{ShiftID: 3, EmployeeName: "Boris", StartTime: "09:00", EndTime: "17:00"},
	}}
	sweeper := &fakeSweeper{}
	svc := NewService(repo, shifts, sweeper, nopLogger{})

	// 2025-03-10 is a Monday
	resp, err := svc.GetDayView(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "9AM - 5PM", resp.BusinessHours)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "9:00 AM - 9:30 AM", resp.Bookings[0].Display)
	assert.Equal(t, "Online", resp.Bookings[0].PaymentMethod)

	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, "Boris", resp.Shifts[0].EmployeeName)
	assert.Nil(t, repo.lastWindow)
}

func TestGetDayView_TimeWindow(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, &fakeShiftRepo{}, &fakeSweeper{}, nopLogger{})

	start := types.TimeString("09:00")
	end := types.TimeString("13:00")

	_, err := svc.GetDayView(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), &start, &end)
	require.NoError(t, err)

	require.NotNil(t, repo.lastWindow)
	assert.Equal(t, start, repo.lastWindow.Start)
	assert.Equal(t, end, repo.lastWindow.End)
}

func TestGetDayView_InvalidWindow(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeShiftRepo{}, &fakeSweeper{}, nopLogger{})

	start := types.TimeString("13:00")
	end := types.TimeString("09:00")

	_, err := svc.GetDayView(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), &start, &end)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
