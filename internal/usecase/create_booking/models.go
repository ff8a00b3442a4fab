package create_booking

import (
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
	"github.com/easybook/EB-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID    int64                // ID клиента
	SlotID        int64                // ID временного слота
	TypeID        int64                // ID услуги
	PaymentMethod domain.PaymentMethod // Способ оплаты: in_store или online
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64            // ID созданной записи
	CustomerID    int64            // ID клиента
	SlotID        int64            // ID слота
	Date          time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания
	ServiceType   string           // Название услуги
	Amount        float64          // Сумма к оплате
	PaymentMethod string           // Способ оплаты
	Reference     string           // Ссылка платежной транзакции
	Status        string           // Статус записи

	CreatedAt time.Time // Время создания
}
