package shift

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий смен и запросов на их изменение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую смену
func (r *Repository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns("employee_id", "shift_date", "start_time", "end_time").
		Values(s.EmployeeID, domain.DateOnly(s.Date), s.StartTime, s.EndTime).
		Suffix("RETURNING shift_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает смену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shift_id", "employee_id", "shift_date", "start_time", "end_time").
		From("shifts").
		Where(squirrel.Eq{"shift_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Shift
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime)
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetDetailsByDate получает смены на дату с именами сотрудников,
// упорядоченные по времени начала; используется дневным видом админа
func (r *Repository) GetDetailsByDate(ctx context.Context, date time.Time) ([]*domain.ShiftDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.shift_id", "u.name", "s.start_time", "s.end_time").
		From("shifts s").
		Join("users u ON s.employee_id = u.user_id").
		Where(squirrel.Eq{"s.shift_date": domain.DateOnly(date)}).
		OrderBy("s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var details []*domain.ShiftDetails
	for rows.Next() {
		var d domain.ShiftDetails
		if err := rows.Scan(&d.ShiftID, &d.EmployeeName, &d.StartTime, &d.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetDetailsByDate - scan shift: %v", ErrScanRow, err)
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByDate - iterate rows: %v", ErrExecQuery, err)
	}

	return details, nil
}

// GetForEmployeeOnDate получает смену сотрудника на конкретную дату
func (r *Repository) GetForEmployeeOnDate(ctx context.Context, employeeID int64, date time.Time) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shift_id", "employee_id", "shift_date", "start_time", "end_time").
		From("shifts").
		Where(squirrel.Eq{
			"employee_id": employeeID,
			"shift_date":  domain.DateOnly(date),
		}).
		OrderBy("start_time ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForEmployeeOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Shift
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime)
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForEmployeeOnDate - scan shift: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetForEmployeeInRange получает смены сотрудника в диапазоне [from, to)
// Одним запросом на месяц: календарю нужен весь месяц сразу
func (r *Repository) GetForEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shift_id", "employee_id", "shift_date", "start_time", "end_time").
		From("shifts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"shift_date": domain.DateOnly(from)}).
		Where(squirrel.Lt{"shift_date": domain.DateOnly(to)}).
		OrderBy("shift_date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForEmployeeInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForEmployeeInRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var shifts []*domain.Shift
	for rows.Next() {
		var s domain.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetForEmployeeInRange - scan shift: %v", ErrScanRow, err)
		}
		shifts = append(shifts, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForEmployeeInRange - iterate rows: %v", ErrExecQuery, err)
	}

	return shifts, nil
}

// NextShiftDate находит дату ближайшей смены сотрудника начиная с from
// Возвращает nil без ошибки, если предстоящих смен нет
func (r *Repository) NextShiftDate(ctx context.Context, employeeID int64, from time.Time) (*time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shift_date").
		From("shifts").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"shift_date": domain.DateOnly(from)}).
		OrderBy("shift_date ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: NextShiftDate - build select query: %v", ErrBuildQuery, err)
	}

	var date time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: NextShiftDate - scan date: %v", ErrScanRow, err)
	}

	return &date, nil
}

// Delete удаляет смену
// Запросы на изменение смены удаляются вызывающим кодом до удаления самой смены:
// внешний ключ каскадом в схеме не закреплен
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"shift_id": id}).
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
	if affected == 0 {
		return ErrShiftNotFound
	}

	return nil
}
