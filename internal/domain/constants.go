package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot calendar constants.
// Расписание склада фиксировано и определяется только днём недели:
// Пн-Пт длинное окно, суббота короткое, воскресенье склад закрыт.
const (
	SlotDurationMinutes = 30

	WeekdayOpenTime  = "09:00"
	WeekdayCloseTime = "16:00"

	SaturdayOpenTime  = "09:00"
	SaturdayCloseTime = "12:00"
)

// Booking validation constants
const (
	MinPackageCount = 1

	// DefaultAdvanceBookingDays горизонт бронирования: насколько далеко
	// вперёд поставщик может резервировать слот
	DefaultAdvanceBookingDays = 30
)
