package create_booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/ptr"
)

// UseCase use case создания бронирования.
//
// Удалённое хранилище ledger'а не даёт атомарного "append, если слот свободен":
// оно умеет только читать и целиком перезаписывать документ. Поэтому коммит
// выполняет протокол read-verify-write:
//
//  1. Инвалидировать кэш и перечитать ledger - самый свежий доступный снапшот.
//  2. Проверить, что пара (дата, слот) не занята. Занята - ErrSlotAlreadyTaken.
//  3. Записать документ целиком: снапшот плюс кандидат.
//  4. Успех - снова инвалидировать кэш, чтобы читатели увидели новое бронирование.
//  5. Сбой записи - ErrCommitFailed и инвалидация кэша: исход неоднозначен,
//     и кэш не должен отдавать снапшот, который может не отражать попытку.
//
// Известное и принятое ограничение: между шагами 1-3 другой экземпляр
// коммиттера (другой процесс) может зафиксировать конфликтующее бронирование
// на тот же слот. Хранилище не даёт ни блокировок, ни compare-and-swap,
// поэтому истинного взаимного исключения здесь нет. Мьютекс ниже
// сериализует коммиты внутри процесса - он сужает окно гонки, но не
// закрывает его между процессами. Вызывающим на границе UI следует
// перепроверять доступность непосредственно перед попыткой коммита.
type UseCase struct {
	cache        LedgerCache
	writer       LedgerWriter
	auditLog     AuditLog
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	advanceBookingDays int

	// сериализация коммитов внутри процесса
	commitMu sync.Mutex
}

// NewUseCase создает новый экземпляр use case.
// auditLog, notifier и metrics опциональны (могут быть nil).
func NewUseCase(
	cache LedgerCache,
	writer LedgerWriter,
	auditLog AuditLog,
	notifier Notifier,
	metrics Metrics,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		cache:              cache,
		writer:             writer,
		auditLog:           auditLog,
		notifier:           notifier,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		advanceBookingDays: advanceBookingDays,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет коммит бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: supplier=%s date=%s slot=%s packages=%d",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Slot, req.PackageCount)

	// 1. Валидация формы кандидата (fail fast)
	orders, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	candidate := domain.Booking{
		Date:           domain.DateOnly(req.Date),
		Slot:           req.Slot,
		SupplierID:     req.SupplierID,
		PackageCount:   req.PackageCount,
		PurchaseOrders: orders,
	}

	// 2-5. Протокол read-verify-write под процессным мьютексом
	uc.commitMu.Lock()
	err = uc.commit(ctx, candidate)
	uc.commitMu.Unlock()
	if err != nil {
		return nil, err
	}

	// 6. Уведомление best-effort: неуспех никогда не откатывает коммит
	notified := uc.notify(ctx, req, candidate)

	return &Response{
		Date:             candidate.Date,
		Slot:             candidate.Slot,
		SupplierID:       candidate.SupplierID,
		PackageCount:     candidate.PackageCount,
		PurchaseOrders:   candidate.PurchaseOrders,
		NotificationSent: notified,
	}, nil
}

// commit выполняет read-verify-write цикл над ledger'ом
func (uc *UseCase) commit(ctx context.Context, candidate domain.Booking) error {
	// Свежайший достижимый снапшот: инвалидация + синхронная перезагрузка
	uc.cache.Invalidate()
	snapshot, err := uc.cache.Get(ctx)
	if err != nil {
		// Запись ещё не начиналась - частичного состояния нет
		uc.logger.Error("CreateBooking: failed to reload ledger: %v", err)
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	if snapshot.HasBooking(candidate.Date, candidate.Slot) {
		uc.logger.Warn("CreateBooking: slot already taken: date=%s slot=%s",
			candidate.Date.Format(domain.DateFormat), candidate.Slot)
		if uc.metrics != nil {
			uc.metrics.IncBookingConflicts()
		}
		uc.recordAudit(ctx, candidate, domain.OutcomeSlotConflict, nil)
		return ErrSlotAlreadyTaken
	}

	// Новый документ = снапшот плюс кандидат; перезапись целиком
	updated := make([]domain.Booking, 0, len(snapshot.Bookings)+1)
	updated = append(updated, snapshot.Bookings...)
	updated = append(updated, candidate)

	if err := uc.writer.ReplaceBookings(ctx, updated); err != nil {
		// Исход неоднозначен: запись могла пройти на стороне хранилища.
		// Кэш инвалидируется, чтобы не отдавать снапшот, который может
		// не отражать эту попытку.
		uc.cache.Invalidate()
		uc.logger.Error("CreateBooking: ledger write failed: %v", err)
		if uc.metrics != nil {
			uc.metrics.IncCommitFailures()
		}
		uc.recordAudit(ctx, candidate, domain.OutcomeCommitFailed, err)
		return fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	// Последующие чтения должны увидеть новое бронирование
	uc.cache.Invalidate()

	uc.logger.Info("CreateBooking: committed supplier=%s date=%s slot=%s",
		candidate.SupplierID, candidate.Date.Format(domain.DateFormat), candidate.Slot)
	if uc.metrics != nil {
		uc.metrics.IncBookingsCommitted()
	}
	uc.recordAudit(ctx, candidate, domain.OutcomeCommitted, nil)

	return nil
}

// notify отправляет подтверждение, если у поставщика указан email
func (uc *UseCase) notify(ctx context.Context, req *Request, booking domain.Booking) bool {
	if uc.notifier == nil || req.SupplierEmail == "" {
		uc.logger.Info("CreateBooking: no notification email for supplier=%s", req.SupplierID)
		return false
	}

	if err := uc.notifier.SendBookingConfirmation(ctx, req.SupplierEmail, req.CCEmails, booking); err != nil {
		uc.logger.Error("CreateBooking: booking committed but notification failed: supplier=%s: %v",
			req.SupplierID, err)
		if uc.metrics != nil {
			uc.metrics.IncNotificationErrors()
		}
		return false
	}

	if uc.metrics != nil {
		uc.metrics.IncNotificationsSent()
	}
	return true
}

// recordAudit пишет запись журнала аудита best-effort
func (uc *UseCase) recordAudit(ctx context.Context, b domain.Booking, outcome domain.CommitOutcome, cause error) {
	if uc.auditLog == nil {
		return
	}

	var detail *string
	if cause != nil {
		detail = ptr.Ptr(cause.Error())
	}

	entry := &domain.CommitAuditEntry{
		SupplierID:     b.SupplierID,
		BookingDate:    b.Date,
		Slot:           b.Slot,
		PackageCount:   b.PackageCount,
		PurchaseOrders: b.PurchaseOrders,
		Outcome:        outcome,
		Detail:         detail,
	}

	if _, err := uc.auditLog.Create(ctx, entry); err != nil {
		uc.logger.Warn("CreateBooking: failed to record audit entry: %v", err)
	}
}
