package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// validateRequest валидирует форму кандидата (fail fast, до обращения к ledger'у).
// Возвращает очищенный список заказов: пустые и пробельные записи отброшены.
func validateRequest(req *Request) ([]string, error) {
	if strings.TrimSpace(req.SupplierID) == "" {
		return nil, fmt.Errorf("%w: supplierID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PackageCount < domain.MinPackageCount {
		return nil, fmt.Errorf("%w: packageCount must be >= %d", ErrInvalidInput, domain.MinPackageCount)
	}

	orders := trimOrders(req.PurchaseOrders)
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: purchaseOrders must contain at least one non-blank entry", ErrInvalidInput)
	}

	if req.Slot.IsZero() {
		return nil, fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	if err := req.Slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid slot format: %v", ErrInvalidInput, err)
	}

	// SlotID валиден, только если порождается календарём на эту дату
	if !domain.IsValidSlot(req.Date, req.Slot) {
		return nil, fmt.Errorf("%w: slot %s is not in the calendar for %s",
			ErrInvalidSlot, req.Slot, req.Date.Format(domain.DateFormat))
	}

	return orders, nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	if domain.DateOnly(date).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := domain.DateOnly(now).AddDate(0, 0, advanceBookingDays)
	if domain.DateOnly(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// trimOrders чистит список заказов: обрезает пробелы, отбрасывает пустые
func trimOrders(orders []string) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		trimmed := strings.TrimSpace(o)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
