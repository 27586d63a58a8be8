package get_available_slots

import (
	"fmt"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	if domain.DateOnly(date).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}

	// advanceBookingDays = 0 означает отсутствие ограничения
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := domain.DateOnly(now).AddDate(0, 0, advanceBookingDays)
	if domain.DateOnly(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
