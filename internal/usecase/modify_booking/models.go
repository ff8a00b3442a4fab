package modify_booking

import (
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Request модель запроса на изменение записи
// Все поля изменения опциональны, но хотя бы одно должно быть задано
type Request struct {
	BookingID int64       // ID изменяемой записи
	UserID    int64       // ID пользователя, выполняющего изменение
	Role      domain.Role // Роль пользователя; администратор изменяет любую запись

	NewSlotID        *int64                // Новый слот (опционально)
	NewTypeID        *int64                // Новая услуга (опционально)
	NewPaymentMethod *domain.PaymentMethod // Новый способ оплаты (опционально)
}

// Response модель ответа с измененной записью
type Response struct {
	ID            int64            // ID записи
	SlotID        int64            // Итоговый слот
	Date          time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания
	ServiceType   string           // Итоговая услуга
	Amount        float64          // Итоговая сумма к оплате
	PaymentMethod string           // Итоговый способ оплаты
}
