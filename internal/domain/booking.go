package domain

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Booking represents a committed delivery reservation in the ledger
type Booking struct {
	Date           time.Time        // Дата доставки (только день, время обнулено)
	Slot           types.TimeString // Идентификатор слота - время начала интервала
	SupplierID     string           // Логин поставщика
	PackageCount   int              // Количество мест груза (бультов)
	PurchaseOrders []string         // Номера заказов на закупку
}

// SameSlot returns true if the booking occupies the given (date, slot) pair
func (b *Booking) SameSlot(date time.Time, slot types.TimeString) bool {
	return b.Slot == slot && SameDay(b.Date, date)
}

// LedgerSnapshot неизменяемый снимок всех бронирований на момент последней
// успешной загрузки из удалённого хранилища. Владелец - кэш ledger'а;
// снапшот заменяется целиком, никогда не модифицируется на месте.
type LedgerSnapshot struct {
	Bookings []Booking
	LoadedAt time.Time
}

// Age возвращает возраст снапшота относительно now
func (s *LedgerSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.LoadedAt)
}

// BookingsForDate возвращает бронирования на указанную дату
func (s *LedgerSnapshot) BookingsForDate(date time.Time) []Booking {
	result := make([]Booking, 0)
	for _, b := range s.Bookings {
		if SameDay(b.Date, date) {
			result = append(result, b)
		}
	}
	return result
}

// BookingsForSupplier возвращает бронирования указанного поставщика
func (s *LedgerSnapshot) BookingsForSupplier(supplierID string) []Booking {
	result := make([]Booking, 0)
	for _, b := range s.Bookings {
		if b.SupplierID == supplierID {
			result = append(result, b)
		}
	}
	return result
}

// HasBooking проверяет, занята ли пара (дата, слот).
// Это ядро инварианта эксклюзивности: на одну пару (дата, слот)
// в ledger'е может существовать не более одного бронирования.
func (s *LedgerSnapshot) HasBooking(date time.Time, slot types.TimeString) bool {
	for i := range s.Bookings {
		if s.Bookings[i].SameSlot(date, slot) {
			return true
		}
	}
	return false
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
