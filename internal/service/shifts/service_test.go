package shifts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	shiftRepo "github.com/easybook/EB-BookingService/internal/infra/storage/shift"
	"github.com/easybook/EB-BookingService/pkg/types"
)

type fakeShiftRepo struct {
	shifts          map[int64]*domain.Shift
	requests        map[int64]*domain.ShiftChangeRequest
	unread          []*domain.ChangeRequestView
	nextDate        *time.Time
	deletedRequests []int64
	deletedShifts   []int64
	markedRead      []int64
	nextID          int64
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{
		shifts:   map[int64]*domain.Shift{},
		requests: map[int64]*domain.ShiftChangeRequest{},
	}
}

func (f *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	f.nextID++
	shift.ID = f.nextID
	f.shifts[shift.ID] = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return shift, nil
}

func (f *fakeShiftRepo) GetDetailsByDate(_ context.Context, _ time.Time) ([]*domain.ShiftDetails, error) {
	return nil, nil
}

func (f *fakeShiftRepo) NextShiftDate(_ context.Context, _ int64, _ time.Time) (*time.Time, error) {
	return f.nextDate, nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.shifts[id]; !ok {
		return shiftRepo.ErrShiftNotFound
	}
	delete(f.shifts, id)
	f.deletedShifts = append(f.deletedShifts, id)
	return nil
}

func (f *fakeShiftRepo) CreateChangeRequest(_ context.Context, req *domain.ShiftChangeRequest) (*domain.ShiftChangeRequest, error) {
	f.nextID++
	req.ID = f.nextID
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeShiftRepo) GetChangeRequestByID(_ context.Context, id int64) (*domain.ShiftChangeRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, shiftRepo.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeShiftRepo) UnreadChangeRequests(_ context.Context) ([]*domain.ChangeRequestView, error) {
	return f.unread, nil
}

func (f *fakeShiftRepo) MarkChangeRequestRead(_ context.Context, id int64) error {
	req, ok := f.requests[id]
	if !ok {
		return shiftRepo.ErrRequestNotFound
	}
	req.ReadStatus = true
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeShiftRepo) DeleteChangeRequestsByShift(_ context.Context, shiftID int64) error {
	f.deletedRequests = append(f.deletedRequests, shiftID)
	for id, req := range f.requests {
		if req.ShiftID == shiftID {
			delete(f.requests, id)
		}
	}
	return nil
}

type fakeBlockedRepo struct {
	blocked bool
}

func (f *fakeBlockedRepo) IsBlocked(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Name: "Boris", Email: "boris@example.com", Role: domain.RoleEmployee}, nil
}

type fakeNotifier struct {
	recipients []string
}

func (f *fakeNotifier) SendBestEffort(_ context.Context, recipient, _, _ string) {
	f.recipients = append(f.recipients, recipient)
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
	svc      *Service
	repo     *fakeShiftRepo
	blocked  *fakeBlockedRepo
	notifier *fakeNotifier
}

func newFixture() *fixture {
	repo := newFakeShiftRepo()
	blocked := &fakeBlockedRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(
		repo,
		blocked,
		fakeUserRepo{},
		notifier,
		fakeTxManager{},
		fixedClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
	return &fixture{svc: svc, repo: repo, blocked: blocked, notifier: notifier}
}

func TestAssign_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Assign(context.Background(), 7, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "09:00", "17:00")
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.EmployeeID)
	assert.Equal(t, "2025-03-12", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
}

func TestAssign_InvalidRange(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name       string
		start, end string
	}{
		{name: "start after end", start: "17:00", end: "09:00"},
		{name: "zero-length shift", start: "09:00", end: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Assign(context.Background(), 7, time.Now(), types.TimeString(tt.start), types.TimeString(tt.end))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAssign_BlockedDate(t *testing.T) {
	f := newFixture()
	f.blocked.blocked = true

	_, err := f.svc.Assign(context.Background(), 7, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), "09:00", "17:00")
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Empty(t, f.repo.shifts)
}

func TestDelete_CascadesChangeRequests(t *testing.T) {
	f := newFixture()

	shift, err := f.repo.Create(context.Background(), &domain.Shift{EmployeeID: 7})
	require.NoError(t, err)
	_, err = f.repo.CreateChangeRequest(context.Background(), &domain.ShiftChangeRequest{EmployeeID: 7, ShiftID: shift.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), shift.ID))

	assert.Equal(t, []int64{shift.ID}, f.repo.deletedRequests)
	assert.Equal(t, []int64{shift.ID}, f.repo.deletedShifts)
	assert.Empty(t, f.repo.requests)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestRequestChange_Success(t *testing.T) {
	f := newFixture()

	shift, err := f.repo.Create(context.Background(), &domain.Shift{EmployeeID: 7})
	require.NoError(t, err)

	err = f.svc.RequestChange(context.Background(), 7, shift.ID, domain.ChangeRequestSwap, "family matters")
	require.NoError(t, err)
	assert.Len(t, f.repo.requests, 1)
}

func TestRequestChange_Validation(t *testing.T) {
	f := newFixture()

	shift, err := f.repo.Create(context.Background(), &domain.Shift{EmployeeID: 7})
	require.NoError(t, err)

	t.Run("unknown type", func(t *testing.T) {
		err := f.svc.RequestChange(context.Background(), 7, shift.ID, "vacation", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reason too long", func(t *testing.T) {
		reason := strings.Repeat("x", domain.MaxChangeReasonLength+1)
		err := f.svc.RequestChange(context.Background(), 7, shift.ID, domain.ChangeRequestCancel, reason)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRequestChange_ForeignShiftDenied(t *testing.T) {
	f := newFixture()

	shift, err := f.repo.Create(context.Background(), &domain.Shift{EmployeeID: 7})
	require.NoError(t, err)

	err = f.svc.RequestChange(context.Background(), 8, shift.ID, domain.ChangeRequestSwap, "")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.repo.requests)
}

func TestRequestChange_ShiftNotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.RequestChange(context.Background(), 7, 42, domain.ChangeRequestSwap, "")
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestResolveRequest_MarksReadAndNotifies(t *testing.T) {
	f := newFixture()

	req, err := f.repo.CreateChangeRequest(context.Background(), &domain.ShiftChangeRequest{
		EmployeeID:  7,
		ShiftID:     3,
		RequestType: domain.ChangeRequestAdjust,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.ResolveRequest(context.Background(), req.ID))

	assert.True(t, f.repo.requests[req.ID].ReadStatus)
	require.Len(t, f.notifier.recipients, 1)
	assert.Equal(t, "boris@example.com", f.notifier.recipients[0])
}

func TestResolveRequest_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.ResolveRequest(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.Empty(t, f.notifier.recipients)
}

func TestNextShiftDate(t *testing.T) {
	f := newFixture()

	t.Run("no upcoming shifts", func(t *testing.T) {
		resp, err := f.svc.NextShiftDate(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, resp.Date)
	})

	t.Run("upcoming shift", func(t *testing.T) {
		next := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		f.repo.nextDate = &next

		resp, err := f.svc.NextShiftDate(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, resp.Date)
		assert.Equal(t, "2025-03-12", *resp.Date)
	})
}
