package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
	"github.com/easybook/EB-BookingService/pkg/types"
)

var slotColumns = []string{
	"slot_id",
	"slot_date",
	"start_time",
	"end_time",
	"max_bookings",
	"current_bookings",
}

// Repository репозиторий слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
func (r *Repository) Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("slot_date", "start_time", "end_time", "max_bookings", "current_bookings").
		Values(s.Date, s.StartTime, s.EndTime, s.MaxBookings, s.CurrentBookings).
		Suffix("RETURNING slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"slot_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.MaxBookings, &s.CurrentBookings,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetByDate получает все слоты на дату, упорядоченные по времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error) {
	return r.selectSlots(ctx, psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"slot_date": domain.DateOnly(date)}).
		OrderBy("start_time ASC"))
}

// GetAvailableByDate получает слоты на дату со свободными местами,
// упорядоченные по времени начала
func (r *Repository) GetAvailableByDate(ctx context.Context, date time.Time) ([]*domain.TimeSlot, error) {
	return r.selectSlots(ctx, psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"slot_date": domain.DateOnly(date)}).
		Where(squirrel.Expr("current_bookings < max_bookings")).
		OrderBy("start_time ASC"))
}

func (r *Repository) selectSlots(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectSlots - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []*domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.MaxBookings, &s.CurrentBookings); err != nil {
			return nil, fmt.Errorf("%w: selectSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectSlots - iterate rows: %v", ErrExecQuery, err)
	}

	return slots, nil
}

// ExistingStartTimes возвращает множество времен начала уже созданных слотов на дату
// Используется генератором слотов для идемпотентности
func (r *Repository) ExistingStartTimes(ctx context.Context, date time.Time) (map[types.TimeString]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("time_slots").
		Where(squirrel.Eq{"slot_date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingStartTimes - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	existing := make(map[types.TimeString]struct{})
	for rows.Next() {
		var start types.TimeString
		if err := rows.Scan(&start); err != nil {
			return nil, fmt.Errorf("%w: ExistingStartTimes - scan start_time: %v", ErrScanRow, err)
		}
		existing[start] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExistingStartTimes - iterate rows: %v", ErrExecQuery, err)
	}

	return existing, nil
}

// AdjustCapacity атомарно применяет delta (±1) к счетчику занятых мест
// Запрос защищен условием, не позволяющим счетчику выйти за [0, max_bookings]:
// при delta > 0 и полном слоте возвращает ErrSlotFull (ожидаемая бизнес-ошибка),
// при delta < 0 и пустом слоте возвращает ErrCapacityViolation (внутренняя ошибка)
// Счетчик никогда не обрезается молча
func (r *Repository) AdjustCapacity(ctx context.Context, id int64, delta int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("current_bookings", squirrel.Expr("current_bookings + ?", delta)).
		Where(squirrel.Eq{"slot_id": id}).
		Where(squirrel.Expr("current_bookings + ? >= 0", delta)).
		Where(squirrel.Expr("current_bookings + ? <= max_bookings", delta)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AdjustCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustCapacity - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustCapacity - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// Условие не прошло: разбираемся, слот отсутствует или счетчик уперся в границу
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if delta > 0 {
		return ErrSlotFull
	}
	return ErrCapacityViolation
}

// Delete удаляет слот; слот с живыми бронированиями удалить нельзя
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"slot_id": id}).
		Where(squirrel.Eq{"current_bookings": 0}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrSlotInUse
}
