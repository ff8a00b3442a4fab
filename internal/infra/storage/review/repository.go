package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/dbmetrics"
	"github.com/easybook/EB-BookingService/pkg/psqlbuilder"
)

// pqUniqueViolation код PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review.repository: review not found")

	// ErrAlreadyReviewed возвращается при попытке оставить второй отзыв на то же бронирование
	ErrAlreadyReviewed = errors.New("review.repository: booking already reviewed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет отзыв; уникальное ограничение на booking_id
// гарантирует не больше одного отзыва на бронирование
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("booking_id", "customer_id", "rating", "comment").
		Values(rv.BookingID, rv.CustomerID, rv.Rating, rv.Comment).
		Suffix("RETURNING review_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rv.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	rv.CreatedAt = createdAt.Time

	return rv, nil
}

// GetByBookingID получает отзыв на бронирование
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("review_id", "booking_id", "customer_id", "rating", "comment", "created_at").
		From("reviews").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var rv domain.Review
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rv.ID, &rv.BookingID, &rv.CustomerID, &rv.Rating, &rv.Comment, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan review: %v", ErrScanRow, err)
	}
	rv.CreatedAt = createdAt.Time

	return &rv, nil
}
