package sheetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// bookingRow строка листа бронирований удалённого документа
type bookingRow struct {
	Date           string   `json:"date"`
	Slot           string   `json:"slot"`
	Supplier       string   `json:"supplier"`
	PackageCount   int      `json:"package_count"`
	PurchaseOrders []string `json:"purchase_orders"`
}

// CredentialRecord строка листа учётных данных.
// CCEmailsRaw хранится как строка с разделителями - разбор выполняет
// вызывающая сторона (см. usecase аутентификации).
type CredentialRecord struct {
	SupplierID  string `json:"supplier"`
	Secret      string `json:"secret"`
	Email       string `json:"email"`
	CCEmailsRaw string `json:"cc_emails"`
}

// sheetPayload обёртка содержимого листа
type sheetPayload struct {
	Rows []bookingRow `json:"rows"`
}

// credentialsPayload обёртка листа учётных данных
type credentialsPayload struct {
	Rows []CredentialRecord `json:"rows"`
}

// ErrorResponse модель ошибки от сервиса документов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует строку листа в доменную модель, нормализуя форматы.
// Разные ревизии документа хранят дату как "YYYY-MM-DD" или
// "YYYY-MM-DD 00:00:00", а слот как "HH:MM" или "HH:MM:SS".
func (r *bookingRow) toDomain() (domain.Booking, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.Booking{}, err
	}

	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("row date=%s: %w", r.Date, err)
	}

	return domain.Booking{
		Date:           date,
		Slot:           slot,
		SupplierID:     strings.TrimSpace(r.Supplier),
		PackageCount:   r.PackageCount,
		PurchaseOrders: r.PurchaseOrders,
	}, nil
}

// fromDomain конвертирует доменную модель в строку листа.
// Сериализация всегда использует короткие формы: "YYYY-MM-DD" и "HH:MM".
func fromDomain(b domain.Booking) bookingRow {
	return bookingRow{
		Date:           b.Date.Format(domain.DateFormat),
		Slot:           b.Slot.String(),
		Supplier:       b.SupplierID,
		PackageCount:   b.PackageCount,
		PurchaseOrders: b.PurchaseOrders,
	}
}

// parseDate парсит дату, допуская хвост со временем
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{
		domain.DateFormat,
		domain.DateFormat + " 15:04:05",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOnly(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
