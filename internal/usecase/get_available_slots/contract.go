package get_available_slots

import (
	"context"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// LedgerCache интерфейс кэша снапшотов ledger'а
type LedgerCache interface {
	Get(ctx context.Context) (*domain.LedgerSnapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
