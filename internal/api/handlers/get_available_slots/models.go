package get_available_slots

import (
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/artel-platform/AOM-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	Date      string `json:"date"`      // "2026-06-02"
	StartTime string `json:"startTime"` // ISO 8601 с оффсетом таймзоны ресурса
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP ответ со списком доступных слотов
type AvailableSlotsResponse struct {
	ResourceID int64          `json:"resourceId"`
	Timezone   string         `json:"timezone"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.Format(time.RFC3339),
			EndTime:   s.EndTime.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		Timezone:   resp.Timezone,
		Slots:      slots,
	}
}
