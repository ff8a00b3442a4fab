package shift

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
)

// CreateChangeRequest добавляет запрос сотрудника на изменение смены
// Запросы создаются непрочитанными и попадают во входящие админа
func (r *Repository) CreateChangeRequest(ctx context.Context, req *domain.ShiftChangeRequest) (*domain.ShiftChangeRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shift_change_requests").
		Columns("employee_id", "shift_id", "request_type", "reason", "read_status").
		Values(req.EmployeeID, req.ShiftID, req.RequestType, req.Reason, false).
		Suffix("RETURNING request_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateChangeRequest - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateChangeRequest - execute insert: %v", ErrExecQuery, err)
	}

	req.ReadStatus = false
	return req, nil
}

// GetChangeRequestByID получает запрос на изменение смены по ID
func (r *Repository) GetChangeRequestByID(ctx context.Context, id int64) (*domain.ShiftChangeRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("request_id", "employee_id", "shift_id", "request_type", "reason", "read_status").
		From("shift_change_requests").
		Where(squirrel.Eq{"request_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetChangeRequestByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.ShiftChangeRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID, &req.EmployeeID, &req.ShiftID, &req.RequestType, &req.Reason, &req.ReadStatus,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetChangeRequestByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// UnreadChangeRequests получает непрочитанные запросы с именем сотрудника
// и данными смены, упорядоченные по дате и времени смены
func (r *Repository) UnreadChangeRequests(ctx context.Context) ([]*domain.ChangeRequestView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.request_id",
		"u.name",
		"r.request_type",
		"s.shift_date",
		"s.start_time",
		"s.end_time",
		"r.reason",
		"r.read_status",
	).
		From("shift_change_requests r").
		Join("shifts s ON r.shift_id = s.shift_id").
		Join("users u ON r.employee_id = u.user_id").
		Where(squirrel.Eq{"r.read_status": false}).
		OrderBy("s.shift_date ASC, s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UnreadChangeRequests - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UnreadChangeRequests - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var views []*domain.ChangeRequestView
	for rows.Next() {
		var v domain.ChangeRequestView
		if err := rows.Scan(&v.RequestID, &v.EmployeeName, &v.RequestType, &v.ShiftDate, &v.StartTime, &v.EndTime, &v.Reason, &v.ReadStatus); err != nil {
			return nil, fmt.Errorf("%w: UnreadChangeRequests - scan request: %v", ErrScanRow, err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: UnreadChangeRequests - iterate rows: %v", ErrExecQuery, err)
	}

	return views, nil
}

// MarkChangeRequestRead отмечает запрос прочитанным
func (r *Repository) MarkChangeRequestRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shift_change_requests").
		Set("read_status", true).
		Where(squirrel.Eq{"request_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkChangeRequestRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkChangeRequestRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkChangeRequestRead - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// DeleteChangeRequestsByShift удаляет все запросы, ссылающиеся на смену
// Вызывается перед удалением смены (ручной каскад)
func (r *Repository) DeleteChangeRequestsByShift(ctx context.Context, shiftID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shift_change_requests").
		Where(squirrel.Eq{"shift_id": shiftID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteChangeRequestsByShift - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteChangeRequestsByShift - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
