package ledgercache

import (
	"context"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// LedgerLoader интерфейс загрузки бронирований из удалённого хранилища
type LedgerLoader interface {
	LoadBookings(ctx context.Context) ([]domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик кэша. Может быть nil - тогда метрики не собираются.
type Metrics interface {
	IncCacheReloads()
	IncCacheReloadErrors()
	SetSnapshotAge(age time.Duration)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
