package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса.
// Все метрики регистрируются в дефолтном registry и отдаются через promhttp.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCommitted prometheus.Counter
	bookingConflicts  prometheus.Counter
	commitFailures    prometheus.Counter

	cacheReloads       prometheus.Counter
	cacheReloadErrors  prometheus.Counter
	cacheSnapshotAge   prometheus.Gauge
	notificationsSent  prometheus.Counter
	notificationErrors prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_committed_total",
			Help:        "Total number of successfully committed bookings",
			ConstLabels: labels,
		}),

		bookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of commits rejected because the slot was already taken",
			ConstLabels: labels,
		}),

		commitFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_commit_failures_total",
			Help:        "Total number of ledger writes that failed with ambiguous outcome",
			ConstLabels: labels,
		}),

		cacheReloads: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_cache_reloads_total",
			Help:        "Total number of ledger snapshot reloads",
			ConstLabels: labels,
		}),

		cacheReloadErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_cache_reload_errors_total",
			Help:        "Total number of failed ledger snapshot reloads",
			ConstLabels: labels,
		}),

		cacheSnapshotAge: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "ledger_cache_snapshot_age_seconds",
			Help:        "Age of the current ledger snapshot at last read",
			ConstLabels: labels,
		}),

		notificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_sent_total",
			Help:        "Total number of confirmation emails sent",
			ConstLabels: labels,
		}),

		notificationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notification_errors_total",
			Help:        "Total number of confirmation emails that failed to send",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncBookingsCommitted увеличивает счётчик успешных бронирований
func (m *Metrics) IncBookingsCommitted() { m.bookingsCommitted.Inc() }

// IncBookingConflicts увеличивает счётчик конфликтов слотов
func (m *Metrics) IncBookingConflicts() { m.bookingConflicts.Inc() }

// IncCommitFailures увеличивает счётчик неуспешных записей в ledger
func (m *Metrics) IncCommitFailures() { m.commitFailures.Inc() }

// IncCacheReloads увеличивает счётчик перезагрузок снапшота
func (m *Metrics) IncCacheReloads() { m.cacheReloads.Inc() }

// IncCacheReloadErrors увеличивает счётчик ошибок перезагрузки
func (m *Metrics) IncCacheReloadErrors() { m.cacheReloadErrors.Inc() }

// SetSnapshotAge выставляет возраст текущего снапшота
func (m *Metrics) SetSnapshotAge(age time.Duration) { m.cacheSnapshotAge.Set(age.Seconds()) }

// IncNotificationsSent увеличивает счётчик отправленных писем
func (m *Metrics) IncNotificationsSent() { m.notificationsSent.Inc() }

// IncNotificationErrors увеличивает счётчик ошибок отправки писем
func (m *Metrics) IncNotificationErrors() { m.notificationErrors.Inc() }
