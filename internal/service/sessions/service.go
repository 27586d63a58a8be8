package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Service хранилище сессий поставщиков.
//
// Сессия - состояние одного цикла login-бронирование, явный объект с токеном
// вместо неявного глобального состояния. Живёт в памяти процесса: от успешной
// аутентификации до успешного коммита или явного logout. Истёкшие сессии
// вычищаются лениво при обращении.
type Service struct {
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu    sync.RWMutex
	store map[string]*domain.Session
}

// NewService создает новый экземпляр сервиса сессий
func NewService(ttl time.Duration, logger Logger) *Service {
	return &Service{
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		store:        make(map[string]*domain.Session),
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create выпускает новую сессию для аутентифицированного поставщика
func (s *Service) Create(supplierID, primaryEmail string, ccEmails []string) *domain.Session {
	now := s.timeProvider.Now()

	session := &domain.Session{
		Token:        uuid.NewString(),
		SupplierID:   supplierID,
		PrimaryEmail: primaryEmail,
		CCEmails:     ccEmails,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	s.mu.Lock()
	s.store[session.Token] = session
	s.mu.Unlock()

	s.logger.Info("sessions: created for supplier=%s expires_at=%s",
		supplierID, session.ExpiresAt.Format(time.RFC3339))
	return session
}

// Get возвращает сессию по токену. Истёкшая сессия уничтожается,
// возвращается ErrSessionExpired.
func (s *Service) Get(token string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.store[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired(s.timeProvider.Now()) {
		s.Destroy(token)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// SetPendingSelection запоминает промежуточный выбор слота и заказов
// до подтверждения бронирования
func (s *Service) SetPendingSelection(token string, slot types.TimeString, orders []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store[token]
	if !ok {
		return ErrSessionNotFound
	}

	session.PendingSlot = &slot
	session.PendingOrders = orders
	return nil
}

// Destroy уничтожает сессию (logout или успешный коммит)
func (s *Service) Destroy(token string) {
	s.mu.Lock()
	session, ok := s.store[token]
	if ok {
		delete(s.store, token)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Info("sessions: destroyed for supplier=%s", session.SupplierID)
	}
}

// Count возвращает число живых сессий (истёкшие не считаются)
func (s *Service) Count() int {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, session := range s.store {
		if !session.IsExpired(now) {
			count++
		}
	}
	return count
}
