package get_supplier_bookings

import (
	"context"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// LedgerCache интерфейс чтения снимка реестра бронирований
type LedgerCache interface {
	Get(ctx context.Context) (*domain.LedgerSnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
