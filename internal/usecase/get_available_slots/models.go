package get_available_slots

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата доставки (без времени)
}

// Response модель ответа с сеткой слотов на дату
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Полная сетка слотов календаря в порядке календаря
}

// Slot элемент сетки слотов
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "09:30")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Свободен ли слот
}

// AvailableSlots возвращает только свободные слоты, сохраняя порядок календаря
func (r *Response) AvailableSlots() []types.TimeString {
	free := make([]types.TimeString, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.Available {
			free = append(free, s.StartTime)
		}
	}
	return free
}
