package create_booking

import (
	"context"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// LedgerCache интерфейс кэша снапшотов ledger'а
type LedgerCache interface {
	Get(ctx context.Context) (*domain.LedgerSnapshot, error)
	Invalidate()
}

// LedgerWriter интерфейс записи в удалённое хранилище ledger'а.
// Хранилище принимает только полную замену документа.
type LedgerWriter interface {
	ReplaceBookings(ctx context.Context, bookings []domain.Booking) error
}

// AuditLog интерфейс журнала аудита попыток коммита. Запись best-effort:
// сбой журнала не влияет на исход бронирования. Может быть nil.
type AuditLog interface {
	Create(ctx context.Context, entry *domain.CommitAuditEntry) (*domain.CommitAuditEntry, error)
}

// Notifier интерфейс отправки подтверждения поставщику. Может быть nil.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to string, cc []string, booking domain.Booking) error
}

// Metrics интерфейс метрик коммитов. Может быть nil.
type Metrics interface {
	IncBookingsCommitted()
	IncBookingConflicts()
	IncCommitFailures()
	IncNotificationsSent()
	IncNotificationErrors()
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
