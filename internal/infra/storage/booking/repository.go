package booking

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

var bookingColumns = []string{
	"booking_id",
	"customer_id",
	"slot_id",
	"type_id",
	"transaction_id",
	"appointment_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается только внутри транзакции вместе с резервированием места в слоте,
// чтобы счетчик слота и запись бронирования менялись атомарно
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("customer_id", "slot_id", "type_id", "transaction_id", "appointment_status").
		Values(b.CustomerID, b.SlotID, b.TypeID, b.TransactionID, b.Status).
		Suffix("RETURNING booking_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByCustomer получает бронирования клиента, новые первыми
// Опционально фильтрует по статусу
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomer - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// CountCurrentByCustomer считает активные (current) бронирования клиента
// Используется для проверки лимита бронирований
func (r *Repository) CountCurrentByCustomer(ctx context.Context, customerID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"customer_id":        customerID,
			"appointment_status": domain.StatusCurrent,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCurrentByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCurrentByCustomer - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("appointment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateSlotAndType переносит бронирование на другой слот и/или услугу
// Капаситеты старого и нового слотов корректируются вызывающей транзакцией
func (r *Repository) UpdateSlotAndType(ctx context.Context, id, slotID, typeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("slot_id", slotID).
		Set("type_id", typeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotAndType - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotAndType - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotAndType - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetDetailsByDate получает расшифровку бронирований на дату для дневного вида:
// времена слота, имя клиента, услуга и способ оплаты; отмененные исключаются
// Опциональное окно [startTime, endTime] ограничивает выборку сменой сотрудника
func (r *Repository) GetDetailsByDate(ctx context.Context, date time.Time, window *TimeWindow) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.booking_id",
		"ts.start_time",
		"ts.end_time",
		"u.name",
		"bt.type_name",
		"pt.payment_method",
		"b.appointment_status",
	).
		From("bookings b").
		Join("time_slots ts ON b.slot_id = ts.slot_id").
		Join("users u ON b.customer_id = u.user_id").
		Join("booking_types bt ON b.type_id = bt.type_id").
		Join("payment_transactions pt ON b.transaction_id = pt.transaction_id").
		Where(squirrel.Eq{"ts.slot_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"b.appointment_status": domain.StatusCancel}).
		OrderBy("ts.start_time ASC")

	if window != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"ts.start_time": window.Start}).
			Where(squirrel.LtOrEq{"ts.end_time": window.End})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var details []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err := rows.Scan(&d.BookingID, &d.StartTime, &d.EndTime, &d.CustomerName, &d.ServiceType, &d.PaymentMethod, &d.Status); err != nil {
			return nil, fmt.Errorf("%w: GetDetailsByDate - scan details: %v", ErrScanRow, err)
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - iterate rows: %v", ErrExecQuery, err)
	}

	return details, nil
}

// GetRemindersForDate получает current-бронирования на дату вместе с
// контактами клиентов; используется фоновым заданием напоминаний
func (r *Repository) GetRemindersForDate(ctx context.Context, date time.Time) ([]*domain.ReminderBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.booking_id",
		"u.name",
		"u.email",
		"ts.slot_date",
		"ts.start_time",
		"ts.end_time",
		"bt.type_name",
	).
		From("bookings b").
		Join("time_slots ts ON b.slot_id = ts.slot_id").
		Join("users u ON b.customer_id = u.user_id").
		Join("booking_types bt ON b.type_id = bt.type_id").
		Where(squirrel.Eq{
			"ts.slot_date":         domain.DateOnly(date),
			"b.appointment_status": domain.StatusCurrent,
		}).
		OrderBy("ts.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRemindersForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRemindersForDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var reminders []*domain.ReminderBooking
	for rows.Next() {
		var rm domain.ReminderBooking
		if err := rows.Scan(&rm.BookingID, &rm.CustomerName, &rm.CustomerEmail, &rm.Date, &rm.StartTime, &rm.EndTime, &rm.ServiceType); err != nil {
			return nil, fmt.Errorf("%w: GetRemindersForDate - scan reminder: %v", ErrScanRow, err)
		}
		reminders = append(reminders, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRemindersForDate - iterate rows: %v", ErrExecQuery, err)
	}

	return reminders, nil
}

// slotEndedCond условие "слот уже закончился" относительно момента now
// Зеркало domain.TimeSlot.HasEnded: слот, заканчивающийся ровно в now,
// еще не считается прошедшим
func slotEndedCond(now time.Time) squirrel.Sqlizer {
	return squirrel.Expr("ts.slot_date + ts.end_time < ?", now)
}

// slotNotEndedCond дополнение slotEndedCond: слот еще идет или в будущем
func slotNotEndedCond(now time.Time) squirrel.Sqlizer {
	return squirrel.Expr("ts.slot_date + ts.end_time >= ?", now)
}

// sweepQuery общий UPDATE сверки: перевод бронирований из from в to
// по условию на времена слота
func sweepQuery(from, to domain.BookingStatus, cond squirrel.Sqlizer) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings b").
		Set("appointment_status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		From("time_slots ts").
		Where("b.slot_id = ts.slot_id").
		Where(squirrel.Eq{"b.appointment_status": from}).
		Where(cond).
		ToSql()
}

// MarkPastDue переводит current-бронирования, чей слот уже закончился, в past
// Идемпотентен: повторный вызов без прошедшего времени ничего не меняет
func (r *Repository) MarkPastDue(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sweepQuery(domain.StatusCurrent, domain.StatusPast, slotEndedCond(now))
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastDue - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastDue - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkPastDue - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// RevivePastDue возвращает past-бронирования в current, если слот снова в будущем
// Такое случается, когда админ задним числом переносит бронирование на другой слот
func (r *Repository) RevivePastDue(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sweepQuery(domain.StatusPast, domain.StatusCurrent, slotNotEndedCond(now))
	if err != nil {
		return 0, fmt.Errorf("%w: RevivePastDue - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RevivePastDue - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RevivePastDue - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// TimeWindow временное окно [Start, End] для фильтрации по смене
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.SlotID,
		&b.TypeID,
		&b.TransactionID,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
