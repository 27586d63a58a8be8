package domain

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Credential учётные данные поставщика из Identity Store.
// Read-only с точки зрения сервиса: хранилище учётных данных внешнее.
type Credential struct {
	SupplierID   string   // Логин поставщика
	Secret       string   // Пароль в том виде, в каком его отдаёт хранилище
	PrimaryEmail string   // Email для уведомлений (может быть пустым)
	CCEmails     []string // Дополнительные адреса для копии
}

// HasEmail returns true if the supplier has a primary notification email
func (c *Credential) HasEmail() bool {
	return c.PrimaryEmail != ""
}

// Session состояние одного цикла login-бронирование.
// Живёт от успешной аутентификации до успешного коммита или явного logout.
type Session struct {
	Token        string
	SupplierID   string
	PrimaryEmail string
	CCEmails     []string

	// Промежуточный выбор пользователя до подтверждения бронирования
	PendingSlot   *types.TimeString
	PendingOrders []string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired проверяет, истекла ли сессия
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
