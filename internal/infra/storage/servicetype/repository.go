package servicetype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
)

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceTypeNotFound = errors.New("servicetype.repository: service type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicetype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicetype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicetype.repository: failed to scan row")
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога услуг (booking_types)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID; цена услуги определяет сумму платежа
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type_id", "type_name", "price").
		From("booking_types").
		Where(squirrel.Eq{"type_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.ServiceType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &st.Name, &st.Price)
	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service type: %v", ErrScanRow, err)
	}

	return &st, nil
}

// List получает весь каталог услуг, упорядоченный по имени
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type_id", "type_name", "price").
		From("booking_types").
		OrderBy("type_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []*domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Price); err != nil {
			return nil, fmt.Errorf("%w: List - scan service type: %v", ErrScanRow, err)
		}
		services = append(services, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return services, nil
}
