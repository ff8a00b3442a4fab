package cancel_booking

import (
	"github.com/easybook/EB-BookingService/internal/domain"
)

// Request модель запроса на отмену записи
type Request struct {
	BookingID int64       // ID отменяемой записи
	UserID    int64       // ID пользователя, выполняющего отмену
	Role      domain.Role // Роль пользователя; администратор отменяет любую запись
}
