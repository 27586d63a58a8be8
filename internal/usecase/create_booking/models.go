package create_booking

import (
	"time"

	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SupplierID     string           // Логин поставщика (из сессии)
	Date           time.Time        // Дата доставки (без времени)
	Slot           types.TimeString // Слот - время начала интервала ("09:00")
	PackageCount   int              // Количество мест груза, >= 1
	PurchaseOrders []string         // Номера заказов на закупку, непустой список

	// Адреса для подтверждения (из сессии; при пустом email уведомление не отправляется)
	SupplierEmail string
	CCEmails      []string
}

// Response модель ответа с зафиксированным бронированием
type Response struct {
	Date           time.Time        // Дата доставки
	Slot           types.TimeString // Слот
	SupplierID     string           // Логин поставщика
	PackageCount   int              // Количество мест груза
	PurchaseOrders []string         // Номера заказов (после чистки пробелов)

	// NotificationSent true, если письмо с подтверждением отправлено.
	// Неуспех уведомления не откатывает бронирование.
	NotificationSent bool
}
