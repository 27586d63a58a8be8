package domain

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// SlotsForDate возвращает упорядоченный список идентификаторов слотов на дату.
// Набор слотов определяется только днём недели, функция чистая и
// детерминированная - никакого I/O, одинаковый результат для одинаковой даты.
//
// Воскресенье - нерабочий день: возвращается пустой срез, а не ошибка,
// чтобы вызывающий мог отрисовать состояние "слотов нет".
func SlotsForDate(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Sunday:
		return []types.TimeString{}
	case time.Saturday:
		return generateSlots(SaturdayOpenTime, SaturdayCloseTime)
	default:
		return generateSlots(WeekdayOpenTime, WeekdayCloseTime)
	}
}

// IsValidSlot проверяет принадлежность слота календарю на указанную дату.
// SlotID никогда не конструируется вызывающим свободно - он валиден, только
// если входит в множество, порождаемое SlotsForDate.
func IsValidSlot(date time.Time, slot types.TimeString) bool {
	for _, s := range SlotsForDate(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// generateSlots генерирует слоты с фиксированным шагом SlotDurationMinutes
// от открытия до закрытия. Слот идентифицируется временем начала; последний
// слот - тот, чей конец не выходит за время закрытия.
func generateSlots(open, close string) []types.TimeString {
	openTime := types.TimeString(open)
	closeTime := types.TimeString(close)

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil || slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots
}
