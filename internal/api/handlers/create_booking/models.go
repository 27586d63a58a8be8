package create_booking

import (
	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	createBooking "github.com/dmcwh/WRS-ReservationService/internal/usecase/create_booking"
)

// BookingRequest HTTP request model
type BookingRequest struct {
	Date           string   `json:"date"`
	Slot           string   `json:"slot"`
	PackageCount   int      `json:"packageCount"`
	PurchaseOrders []string `json:"purchaseOrders"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Date             string   `json:"date"`
	Slot             string   `json:"slot"`
	SupplierID       string   `json:"supplierId"`
	PackageCount     int      `json:"packageCount"`
	PurchaseOrders   []string `json:"purchaseOrders"`
	NotificationSent bool     `json:"notificationSent"`
}

func toResponse(result *createBooking.Response) BookingResponse {
	return BookingResponse{
		Date:             result.Date.Format(domain.DateFormat),
		Slot:             result.Slot.String(),
		SupplierID:       result.SupplierID,
		PackageCount:     result.PackageCount,
		PurchaseOrders:   result.PurchaseOrders,
		NotificationSent: result.NotificationSent,
	}
}
