package get_available_slots

import (
	"context"
	"fmt"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// UseCase use case получения сетки слотов на дату.
//
// Результат - чистая разность множеств: слоты календаря минус слоты,
// занятые в текущем снапшоте ledger'а на эту дату. Никакого ранжирования,
// порядок календаря сохраняется.
//
// Снапшот может отставать от конкурентных бронирований других поставщиков,
// поэтому непосредственно перед коммитом доступность перепроверяется
// по инвалидированному кэшу (см. usecase create_booking).
type UseCase struct {
	cache              LedgerCache
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cache LedgerCache, advanceBookingDays int, logger Logger) *UseCase {
	return &UseCase{
		cache:              cache,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 2. Слоты календаря на дату. Нерабочий день даёт пустую сетку -
	// это валидное состояние "слотов нет", а не ошибка.
	calendar := domain.SlotsForDate(req.Date)
	if len(calendar) == 0 {
		uc.logger.Info("GetAvailableSlots: non-operating day %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 3. Текущий снапшот ledger'а
	// Сбой загрузки не маскируется устаревшими данными: доступность
	// в этот момент неизвестна
	snapshot, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get ledger snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	// 4. Разность множеств с сохранением порядка календаря
	slots := buildSlotGrid(calendar, snapshot.BookingsForDate(req.Date))

	uc.logger.Info("GetAvailableSlots: date=%s total=%d free=%d",
		req.Date.Format(domain.DateFormat), len(slots), countAvailable(slots))

	return &Response{Date: req.Date, Slots: slots}, nil
}
