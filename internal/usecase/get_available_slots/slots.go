package get_available_slots

import (
	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// buildSlotGrid строит сетку слотов: все слоты календаря в исходном порядке,
// каждый помечен занятостью по бронированиям на дату.
// Слот, занятый в ledger'е, никогда не помечается свободным; слот вне
// календаря в сетку не попадает вовсе.
func buildSlotGrid(calendar []types.TimeString, dayBookings []domain.Booking) []Slot {
	booked := make(map[types.TimeString]struct{}, len(dayBookings))
	for _, b := range dayBookings {
		booked[b.Slot] = struct{}{}
	}

	grid := make([]Slot, 0, len(calendar))
	for _, start := range calendar {
		_, taken := booked[start]
		grid = append(grid, Slot{
			StartTime:       start,
			DurationMinutes: domain.SlotDurationMinutes,
			Available:       !taken,
		})
	}

	return grid
}

// countAvailable возвращает число свободных слотов в сетке
func countAvailable(slots []Slot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}
