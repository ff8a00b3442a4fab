package blockeddate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockeddate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockeddate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockeddate.repository: failed to scan row")
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий заблокированных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Block блокирует дату; повторная блокировка той же даты не ошибка
func (r *Repository) Block(ctx context.Context, date time.Time, setBy int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("block_days").
		Columns("date", "set_by").
		Values(domain.DateOnly(date), setBy).
		Suffix("ON CONFLICT (date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Block - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Block - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Unblock снимает блокировку с даты; отсутствие записи не ошибка
func (r *Repository) Unblock(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("block_days").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Unblock - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Unblock - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// IsBlocked проверяет, заблокирована ли дата
func (r *Repository) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("block_days").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsBlocked - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetForRange получает заблокированные даты в диапазоне [from, to)
// как множество строк YYYY-MM-DD; календарь запрашивает месяц одним вызовом
func (r *Repository) GetForRange(ctx context.Context, from, to time.Time) (map[string]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From("block_days").
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.Lt{"date": domain.DateOnly(to)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make(map[string]struct{})
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetForRange - scan date: %v", ErrScanRow, err)
		}
		blocked[date.Format(domain.DateFormat)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForRange - iterate rows: %v", ErrExecQuery, err)
	}

	return blocked, nil
}
