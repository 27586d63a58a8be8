package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

var (
	// 2026-03-04 - среда, 2026-03-07 - суббота, 2026-03-08 - воскресенье
	wednesday = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
)

func TestSlotsForDate_Weekday(t *testing.T) {
	slots := SlotsForDate(wednesday)

	require.Len(t, slots, 14)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("15:30"), slots[len(slots)-1])
}

func TestSlotsForDate_Saturday(t *testing.T) {
	slots := SlotsForDate(saturday)

	require.Len(t, slots, 6)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("11:30"), slots[len(slots)-1])
}

func TestSlotsForDate_Sunday(t *testing.T) {
	slots := SlotsForDate(sunday)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestSlotsForDate_Deterministic(t *testing.T) {
	assert.Equal(t, SlotsForDate(wednesday), SlotsForDate(wednesday))
	// Одинаковый день недели даёт одинаковый набор
	nextWednesday := wednesday.AddDate(0, 0, 7)
	assert.Equal(t, SlotsForDate(wednesday), SlotsForDate(nextWednesday))
}

func TestSlotsForDate_ChronologicalOrder(t *testing.T) {
	slots := SlotsForDate(wednesday)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must precede %s", slots[i-1], slots[i])
	}
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot(wednesday, "09:00"))
	assert.True(t, IsValidSlot(wednesday, "15:30"))
	assert.False(t, IsValidSlot(wednesday, "16:00"), "slot past closing time")
	assert.False(t, IsValidSlot(wednesday, "08:30"), "slot before opening time")
	assert.False(t, IsValidSlot(wednesday, "09:15"), "slot off the half-hour grid")

	assert.True(t, IsValidSlot(saturday, "11:30"))
	assert.False(t, IsValidSlot(saturday, "12:00"), "Saturday closes at noon")

	assert.False(t, IsValidSlot(sunday, "09:00"), "no slots on Sunday")
}

func TestLedgerSnapshot_HasBooking(t *testing.T) {
	snap := &LedgerSnapshot{
		Bookings: []Booking{
			{Date: wednesday, Slot: "09:00", SupplierID: "prov-a"},
			{Date: saturday, Slot: "10:00", SupplierID: "prov-b"},
		},
	}

	assert.True(t, snap.HasBooking(wednesday, "09:00"))
	assert.False(t, snap.HasBooking(wednesday, "09:30"))
	assert.False(t, snap.HasBooking(saturday, "09:00"))

	// Время дня в дате не влияет на сравнение
	noon := wednesday.Add(12 * time.Hour)
	assert.True(t, snap.HasBooking(noon, "09:00"))
}

func TestLedgerSnapshot_BookingsForSupplier(t *testing.T) {
	snap := &LedgerSnapshot{
		Bookings: []Booking{
			{Date: wednesday, Slot: "09:00", SupplierID: "prov-a"},
			{Date: wednesday, Slot: "10:00", SupplierID: "prov-b"},
			{Date: saturday, Slot: "09:30", SupplierID: "prov-a"},
		},
	}

	mine := snap.BookingsForSupplier("prov-a")
	require.Len(t, mine, 2)
	assert.Equal(t, types.TimeString("09:00"), mine[0].Slot)
	assert.Equal(t, types.TimeString("09:30"), mine[1].Slot)

	assert.Empty(t, snap.BookingsForSupplier("prov-c"))
}
