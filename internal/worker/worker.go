package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Worker фоновое ежедневное задание: сверка статусов бронирований
// и рассылка напоминаний о записях на завтра
type Worker struct {
	sweeper      StatusSweeper
	reminderRepo ReminderRepository
	notifier     Notifier
	clock        TimeProvider
	runAt        types.TimeString
	logger       Logger
}

// New создает новый экземпляр фонового задания
// runAt задает локальное время запуска в формате "HH:MM"
func New(
	sweeper StatusSweeper,
	reminderRepo ReminderRepository,
	notifier Notifier,
	clock TimeProvider,
	runAt types.TimeString,
	logger Logger,
) (*Worker, error) {
	if err := runAt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run_at %q: %w", runAt, err)
	}

	return &Worker{
		sweeper:      sweeper,
		reminderRepo: reminderRepo,
		notifier:     notifier,
		clock:        clock,
		runAt:        runAt,
		logger:       logger,
	}, nil
}

// Run запускает цикл задания; завершается при отмене контекста
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Worker started, daily run at %s", w.runAt)

	for {
		delay := w.untilNextRun(w.clock.Now())
		timer := time.NewTimer(delay)

		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("Worker stopped: %v", ctx.Err())
			return
		case <-timer.C:
			w.runOnce(ctx)
		}
	}
}

// RunOnce выполняет одну итерацию задания вне расписания
func (w *Worker) RunOnce(ctx context.Context) {
	w.runOnce(ctx)
}

func (w *Worker) runOnce(ctx context.Context) {
	w.logger.Info("Worker run started")

	if result, err := w.sweeper.Execute(ctx); err != nil {
		w.logger.Error("Worker: status sweep failed: %v", err)
	} else {
		w.logger.Info("Worker: status sweep done, moved_to_past=%d, moved_to_current=%d",
			result.MovedToPast, result.MovedToCurrent)
	}

	w.sendReminders(ctx)

	w.logger.Info("Worker run finished")
}

// sendReminders рассылает по одному напоминанию на каждое
// активное бронирование завтрашнего дня
func (w *Worker) sendReminders(ctx context.Context) {
	tomorrow := w.clock.Now().AddDate(0, 0, 1)

	reminders, err := w.reminderRepo.GetRemindersForDate(ctx, tomorrow)
	if err != nil {
		w.logger.Error("Worker: failed to fetch reminders for %s: %v", tomorrow.Format(domain.DateFormat), err)
		return
	}
	if len(reminders) == 0 {
		w.logger.Info("Worker: no reminders for %s", tomorrow.Format(domain.DateFormat))
		return
	}

	for _, rm := range reminders {
		body := fmt.Sprintf("Hi %s, this is a reminder of your %s appointment on %s at %s.",
			rm.CustomerName, rm.ServiceType, rm.Date.Format(domain.DateFormat), rm.StartTime.Display())
		w.notifier.SendBestEffort(ctx, rm.CustomerEmail, "Appointment reminder", body)
	}

	w.logger.Info("Worker: sent %d reminders for %s", len(reminders), tomorrow.Format(domain.DateFormat))
}

// untilNextRun вычисляет задержку до ближайшего запуска
// Если runAt сегодня уже прошло, запуск переносится на завтра
func (w *Worker) untilNextRun(now time.Time) time.Duration {
	minutes, _ := w.runAt.Minutes()

	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(minutes) * time.Minute)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
