package ledgercache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// Cache кэш снапшотов ledger'а с ограниченным окном свежести.
//
// Get возвращает закэшированный снапшот, пока его возраст меньше ttl,
// иначе синхронно перезагружает его из хранилища. Конкурентные Get во время
// перезагрузки схлопываются в одну (single-flight): все вызывающие получают
// результат одной загрузки. Invalidate принуждает следующий Get к перезагрузке
// независимо от возраста.
//
// Опубликованный снапшот неизменяем, поэтому чтение после получения ссылки
// не требует блокировок. Кэш - единственное разделяемое изменяемое состояние
// процесса.
type Cache struct {
	loader  LedgerLoader
	ttl     time.Duration
	timePr  TimeProvider
	log     Logger
	metrics Metrics

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *domain.LedgerSnapshot
}

// New создает новый кэш снапшотов
func New(loader LedgerLoader, ttl time.Duration, log Logger, metrics Metrics) *Cache {
	return &Cache{
		loader:  loader,
		ttl:     ttl,
		timePr:  &RealTimeProvider{},
		log:     log,
		metrics: metrics,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (c *Cache) WithTimeProvider(tp TimeProvider) *Cache {
	c.timePr = tp
	return c
}

// Get возвращает актуальный снапшот ledger'а.
// При сбое загрузки возвращает ошибку, а не предыдущий снапшот.
func (c *Cache) Get(ctx context.Context) (*domain.LedgerSnapshot, error) {
	now := c.timePr.Now()

	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()

	if snap != nil && snap.Age(now) < c.ttl {
		if c.metrics != nil {
			c.metrics.SetSnapshotAge(snap.Age(now))
		}
		return snap, nil
	}

	return c.reload(ctx)
}

// Invalidate сбрасывает снапшот: следующий Get перезагрузит его из хранилища
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

// reload перезагружает снапшот через single-flight группу
func (c *Cache) reload(ctx context.Context) (*domain.LedgerSnapshot, error) {
	v, err, shared := c.group.Do("reload", func() (interface{}, error) {
		bookings, err := c.loader.LoadBookings(ctx)
		if err != nil {
			if c.metrics != nil {
				c.metrics.IncCacheReloadErrors()
			}
			return nil, fmt.Errorf("%w: %w", ErrReloadFailed, err)
		}

		snap := &domain.LedgerSnapshot{
			Bookings: bookings,
			LoadedAt: c.timePr.Now(),
		}

		c.mu.Lock()
		c.snapshot = snap
		c.mu.Unlock()

		if c.metrics != nil {
			c.metrics.IncCacheReloads()
			c.metrics.SetSnapshotAge(0)
		}

		c.log.Info("ledgercache: snapshot reloaded, bookings=%d", len(bookings))
		return snap, nil
	})

	if err != nil {
		return nil, err
	}

	if shared {
		c.log.Debug("ledgercache: reload coalesced with concurrent caller")
	}

	return v.(*domain.LedgerSnapshot), nil
}
