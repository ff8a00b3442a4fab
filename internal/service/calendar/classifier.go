package calendar

import (
	"time"

	"github.com/easybook/EB-BookingService/internal/domain"
)

// ClassifyContext месячный контекст классификации: текущее время плюс
// заблокированные даты и смены, выбранные одним запросом на месяц
type ClassifyContext struct {
	Now     time.Time
	Blocked map[string]struct{}     // ключ YYYY-MM-DD
	Shifts  map[string]*domain.Shift // ключ YYYY-MM-DD, только для сотрудника
}

// DayClassifier стратегия раскраски дня; классы взаимоисключающие,
// порядок проверок внутри реализации фиксирован
type DayClassifier interface {
	Classify(date time.Time, cc ClassifyContext) domain.DayClass
}

// AdminClassifier классификация для администратора и клиента:
// blocked-day имеет приоритет над past-day, по умолчанию business-day
type AdminClassifier struct{}

func (AdminClassifier) Classify(date time.Time, cc ClassifyContext) domain.DayClass {
	key := date.Format(domain.DateFormat)
	if _, ok := cc.Blocked[key]; ok {
		return domain.DayBlocked
	}
	if date.Before(domain.DateOnly(cc.Now)) {
		return domain.DayPast
	}
	return domain.DayBusiness
}

// EmployeeClassifier классификация для сотрудника: смена перекрывает
// блокировку даты, по умолчанию off-day
type EmployeeClassifier struct{}

func (EmployeeClassifier) Classify(date time.Time, cc ClassifyContext) domain.DayClass {
	key := date.Format(domain.DateFormat)
	if shift, ok := cc.Shifts[key]; ok {
		if shift.IsCompleted(cc.Now) {
			return domain.DayCompleted
		}
		return domain.DayWork
	}
	if _, ok := cc.Blocked[key]; ok {
		return domain.DayBlockedShift
	}
	return domain.DayOff
}
