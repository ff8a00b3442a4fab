package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/internal/usecase/sweep_statuses"
	"github.com/easybook/EB-BookingService/pkg/types"
)

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

type fakeReminderRepo struct {
	reminders []*domain.ReminderBooking
	err       error
	lastDate  time.Time
}

func (f *fakeReminderRepo) GetRemindersForDate(_ context.Context, date time.Time) ([]*domain.ReminderBooking, error) {
	f.lastDate = date
	return f.reminders, f.err
}

type sentNotification struct {
	recipient string
	subject   string
	body      string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) SendBestEffort(_ context.Context, recipient, subject, body string) {
	f.sent = append(f.sent, sentNotification{recipient, subject, body})
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestWorker(t *testing.T, sweeper *fakeSweeper, repo *fakeReminderRepo, notifier *fakeNotifier, now time.Time) *Worker {
	t.Helper()
	w, err := New(sweeper, repo, notifier, fixedClock{now}, types.TimeString("07:00"), nopLogger{})
	require.NoError(t, err)
	return w
}

func TestNew_InvalidRunAt(t *testing.T) {
	_, err := New(&fakeSweeper{}, &fakeReminderRepo{}, &fakeNotifier{}, fixedClock{}, types.TimeString("25:99"), nopLogger{})
	assert.Error(t, err)
}

func TestRunOnce_SweepsAndSendsReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	sweeper := &fakeSweeper{}
	repo := &fakeReminderRepo{reminders: []*domain.ReminderBooking{
		{
			BookingID:     1,
			CustomerName:  "Anna",
			CustomerEmail: "anna@example.com",
			Date:          time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			StartTime:     "14:00",
			EndTime:       "14:30",
			ServiceType:   "Haircut",
		},
	}}
	notifier := &fakeNotifier{}

	w := newTestWorker(t, sweeper, repo, notifier, now)
	w.RunOnce(context.Background())

	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, "2025-03-11", repo.lastDate.Format(domain.DateFormat))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "anna@example.com", notifier.sent[0].recipient)
	assert.Equal(t, "Appointment reminder", notifier.sent[0].subject)
	assert.Contains(t, notifier.sent[0].body, "Anna")
	assert.Contains(t, notifier.sent[0].body, "2025-03-11")
	assert.Contains(t, notifier.sent[0].body, "2:00 PM")
	assert.Contains(t, notifier.sent[0].body, "Haircut")
}

func TestRunOnce_SweepFailureStillSendsReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	sweeper := &fakeSweeper{err: assert.AnError}
	repo := &fakeReminderRepo{reminders: []*domain.ReminderBooking{
		{BookingID: 1, CustomerEmail: "anna@example.com", Date: now.AddDate(0, 0, 1), StartTime: "09:00"},
	}}
	notifier := &fakeNotifier{}

	w := newTestWorker(t, sweeper, repo, notifier, now)
	w.RunOnce(context.Background())

	assert.Len(t, notifier.sent, 1)
}

func TestRunOnce_NoRemindersNoNotifications(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{}

	w := newTestWorker(t, &fakeSweeper{}, &fakeReminderRepo{}, notifier, now)
	w.RunOnce(context.Background())

	assert.Empty(t, notifier.sent)
}

func TestRunOnce_ReminderFetchFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{}
	repo := &fakeReminderRepo{err: assert.AnError}

	w := newTestWorker(t, &fakeSweeper{}, repo, notifier, now)
	w.RunOnce(context.Background())

	assert.Empty(t, notifier.sent)
}

func TestUntilNextRun(t *testing.T) {
	w := newTestWorker(t, &fakeSweeper{}, &fakeReminderRepo{}, &fakeNotifier{}, time.Time{})

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "before run time today",
			now:  time.Date(2025, 3, 10, 5, 30, 0, 0, time.UTC),
			want: 90 * time.Minute,
		},
		{
			name: "exactly at run time rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC),
			want: 24 * time.Hour,
		},
		{
			name: "after run time rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			want: 8 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.untilNextRun(tt.now))
		})
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	w := newTestWorker(t, &fakeSweeper{}, &fakeReminderRepo{}, &fakeNotifier{}, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
