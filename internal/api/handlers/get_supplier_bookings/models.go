package get_supplier_bookings

import (
	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// BookingsResponse HTTP response model
type BookingsResponse struct {
	SupplierID string            `json:"supplierId"`
	Bookings   []BookingResponse `json:"bookings"`
}

// BookingResponse элемент списка бронирований поставщика
type BookingResponse struct {
	Date           string   `json:"date"`
	Slot           string   `json:"slot"`
	PackageCount   int      `json:"packageCount"`
	PurchaseOrders []string `json:"purchaseOrders"`
}

func toResponse(supplierID string, bookings []domain.Booking) BookingsResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, BookingResponse{
			Date:           b.Date.Format(domain.DateFormat),
			Slot:           b.Slot.String(),
			PackageCount:   b.PackageCount,
			PurchaseOrders: b.PurchaseOrders,
		})
	}

	return BookingsResponse{
		SupplierID: supplierID,
		Bookings:   items,
	}
}
