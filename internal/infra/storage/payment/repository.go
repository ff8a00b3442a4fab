package payment

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
	// ErrTransactionNotFound возвращается, когда платежная транзакция не найдена
	ErrTransactionNotFound = errors.New("payment.repository: transaction not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий платежных транзакций
// Сервис только записывает транзакции; само проведение платежа выполняет внешний процессинг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает платежную транзакцию
func (r *Repository) Create(ctx context.Context, t *domain.PaymentTransaction) (*domain.PaymentTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_transactions").
		Columns("reference", "amount", "payment_method", "confirmed").
		Values(t.Reference, t.Amount, t.Method, t.Confirmed).
		Suffix("RETURNING transaction_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetByID получает транзакцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PaymentTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("transaction_id", "reference", "amount", "payment_method", "confirmed", "created_at").
		From("payment_transactions").
		Where(squirrel.Eq{"transaction_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.PaymentTransaction
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Reference, &t.Amount, &t.Method, &t.Confirmed, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transaction: %v", ErrScanRow, err)
	}
	t.CreatedAt = createdAt.Time

	return &t, nil
}

// Update перезаписывает сумму и способ оплаты транзакции
// Вызывается при изменении услуги или способа оплаты в бронировании
func (r *Repository) Update(ctx context.Context, id int64, amount float64, method domain.PaymentMethod) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_transactions").
		Set("amount", amount).
		Set("payment_method", method).
		Where(squirrel.Eq{"transaction_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// ConfirmByReference помечает транзакцию подтвержденной по opaque-ссылке
// Вызывается callback-ом внешнего платежного процессинга
func (r *Repository) ConfirmByReference(ctx context.Context, reference string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_transactions").
		Set("confirmed", true).
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ConfirmByReference - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConfirmByReference - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConfirmByReference - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
