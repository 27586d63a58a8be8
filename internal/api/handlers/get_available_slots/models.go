package get_available_slots

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	getAvailableSlots "github.com/dmcwh/WRS-ReservationService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse элемент сетки слотов в ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

func toResponse(result *getAvailableSlots.Response) SlotsResponse {
	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}

	return SlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateFormat, raw)
}
