package models

import (
	"github.com/easybook/EB-BookingService/internal/domain"
)

// SlotResponse слот в ответе API
type SlotResponse struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Display        string `json:"display"`
	AvailableSpots int    `json:"available_spots"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// GenerateResult итог генерации слотов на дату
type GenerateResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// FromDomainSlot конвертирует domain.TimeSlot в SlotResponse
func FromDomainSlot(s *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:             s.ID,
		Date:           s.Date.Format(domain.DateFormat),
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		Display:        s.StartTime.Display() + " - " + s.EndTime.Display(),
		AvailableSpots: s.AvailableSpots(),
	}
}

// FromDomainSlotList конвертирует список слотов в SlotListResponse
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, FromDomainSlot(s))
	}
	return resp
}
