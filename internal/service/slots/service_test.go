package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	slotRepo "github.com/easybook/EB-BookingService/internal/infra/storage/slot"
	"github.com/easybook/EB-BookingService/pkg/types"
)

type fakeSlotRepo struct {
	available []*domain.TimeSlot
	all       []*domain.TimeSlot
	existing  map[types.TimeString]struct{}
	created   []*domain.TimeSlot
	deleteErr error
	nextID    int64
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	f.nextID++
	slot.ID = f.nextID
	f.created = append(f.created, slot)
	if f.existing == nil {
		f.existing = map[types.TimeString]struct{}{}
	}
	f.existing[slot.StartTime] = struct{}{}
	return slot, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	for _, s := range f.all {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.TimeSlot, error) {
	return f.all, nil
}

func (f *fakeSlotRepo) GetAvailableByDate(_ context.Context, _ time.Time) ([]*domain.TimeSlot, error) {
	return f.available, nil
}

func (f *fakeSlotRepo) ExistingStartTimes(_ context.Context, _ time.Time) (map[types.TimeString]struct{}, error) {
	if f.existing == nil {
		return map[types.TimeString]struct{}{}, nil
	}
	return f.existing, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeBlockedRepo struct {
	blocked bool
}

func (f *fakeBlockedRepo) IsBlocked(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, nil
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

func slotAt(id int64, day time.Time, start, end types.TimeString) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          id,
		Date:        day,
		StartTime:   start,
		EndTime:     end,
		MaxBookings: domain.DefaultMaxBookingsPerSlot,
	}
}

func TestGetAvailableSlots_FiltersElapsedToday(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{available: []*domain.TimeSlot{
		slotAt(1, today, "09:00", "09:30"),
		slotAt(2, today, "11:00", "11:30"),
		slotAt(3, today, "11:30", "12:00"),
		slotAt(4, today, "14:00", "14:30"),
	}}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC)}, nopLogger{})

	resp, err := svc.GetAvailableSlots(context.Background(), today)
	require.NoError(t, err)

	// 09:00 and 11:00 already started; 11:30 starts exactly now and stays
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "11:30", resp.Slots[0].StartTime)
	assert.Equal(t, "14:00", resp.Slots[1].StartTime)
}

func TestGetAvailableSlots_FutureDateKeepsAll(t *testing.T) {
	tomorrow := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{available: []*domain.TimeSlot{
		slotAt(1, tomorrow, "09:00", "09:30"),
		slotAt(2, tomorrow, "09:30", "10:00"),
	}}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)}, nopLogger{})

	resp, err := svc.GetAvailableSlots(context.Background(), tomorrow)
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestGenerateDefaultSlots_Weekday(t *testing.T) {
	// 2025-03-10 is a Monday: 09:00-17:00 gives 16 half-hour slots
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: monday}, nopLogger{})

	result, err := svc.GenerateDefaultSlots(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 16, result.Added)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, repo.created, 16)
	first := repo.created[0]
	assert.Equal(t, types.TimeString("09:00"), first.StartTime)
	assert.Equal(t, types.TimeString("09:30"), first.EndTime)
	assert.Equal(t, domain.DefaultMaxBookingsPerSlot, first.MaxBookings)
	last := repo.created[len(repo.created)-1]
	assert.Equal(t, types.TimeString("16:30"), last.StartTime)
	assert.Equal(t, types.TimeString("17:00"), last.EndTime)
}

func TestGenerateDefaultSlots_Weekend(t *testing.T) {
	// 2025-03-15 is a Saturday: 10:00-16:00 gives 12 half-hour slots
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: saturday}, nopLogger{})

	result, err := svc.GenerateDefaultSlots(context.Background(), saturday)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Added)
}

func TestGenerateDefaultSlots_Idempotent(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: monday}, nopLogger{})

	first, err := svc.GenerateDefaultSlots(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 16, first.Added)

	second, err := svc.GenerateDefaultSlots(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 16, second.Skipped)
	assert.Len(t, repo.created, 16)
}

func TestGenerateDefaultSlots_PartiallyExisting(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{existing: map[types.TimeString]struct{}{
		"09:00": {},
		"12:00": {},
	}}
	svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: monday}, nopLogger{})

	result, err := svc.GenerateDefaultSlots(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 14, result.Added)
	assert.Equal(t, 2, result.Skipped)
}

func TestGenerateDefaultSlots_BlockedDate(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{}
	svc := NewService(repo, &fakeBlockedRepo{blocked: true}, fixedClock{now: monday}, nopLogger{})

	_, err := svc.GenerateDefaultSlots(context.Background(), monday)
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Empty(t, repo.created)
}

func TestDeleteSlot_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "success", repoErr: nil, wantErr: nil},
		{name: "not found", repoErr: slotRepo.ErrSlotNotFound, wantErr: ErrSlotNotFound},
		{name: "has bookings", repoErr: slotRepo.ErrSlotInUse, wantErr: ErrSlotInUse},
		{name: "storage failure", repoErr: assert.AnError, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSlotRepo{deleteErr: tt.repoErr}
			svc := NewService(repo, &fakeBlockedRepo{}, fixedClock{now: time.Now()}, nopLogger{})

			err := svc.DeleteSlot(context.Background(), 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
