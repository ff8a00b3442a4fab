package models

import (
	"github.com/easybook/EB-BookingService/internal/domain"
)

// MonthView месячная сетка календаря для отображения
type MonthView struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Weeks []domain.Week `json:"weeks"`
}
