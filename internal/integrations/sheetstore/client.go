package sheetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// Имена листов удалённого документа
const (
	reservationsSheet = "reservations"
	credentialsSheet  = "credentials"
)

// Client клиент сервиса удалённых документов, в котором хранятся
// ledger бронирований и учётные данные поставщиков.
//
// Сервис отдаёт содержимое листа целиком и принимает только полную замену
// листа (whole-document семантика) - построчного append у него нет.
// Это осознанное ограничение внешнего хранилища, см. usecase create_booking.
type Client struct {
	baseURL    string
	documentID string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, documentID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		documentID: documentID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// LoadBookings загружает все бронирования из листа reservations
func (c *Client) LoadBookings(ctx context.Context) ([]domain.Booking, error) {
	url := c.sheetURL(reservationsSheet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBookings - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBookings - execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "LoadBookings"); err != nil {
		return nil, err
	}

	var payload sheetPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: LoadBookings - decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(payload.Rows))
	for i, row := range payload.Rows {
		booking, err := row.toDomain()
		if err != nil {
			// Битая строка не должна ронять весь ledger: логируем и пропускаем
			c.log.Warn("LoadBookings: skipping malformed row %d: %v", i, err)
			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// ReplaceBookings целиком заменяет содержимое листа reservations.
// Успешная замена durably видна последующим LoadBookings.
func (c *Client) ReplaceBookings(ctx context.Context, bookings []domain.Booking) error {
	rows := make([]bookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, fromDomain(b))
	}

	body, err := json.Marshal(sheetPayload{Rows: rows})
	if err != nil {
		return fmt.Errorf("%w: ReplaceBookings - marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.sheetURL(reservationsSheet), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: ReplaceBookings - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ReplaceBookings - execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "ReplaceBookings"); err != nil {
		return err
	}

	c.log.Info("ReplaceBookings: sheet rewritten, rows=%d", len(rows))
	return nil
}

// LoadCredentials загружает учётные данные поставщиков из листа credentials
func (c *Client) LoadCredentials(ctx context.Context) ([]CredentialRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sheetURL(credentialsSheet), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadCredentials - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadCredentials - execute request: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "LoadCredentials"); err != nil {
		return nil, err
	}

	var payload credentialsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: LoadCredentials - decode response: %v", ErrInvalidResponse, err)
	}

	return payload.Rows, nil
}

func (c *Client) sheetURL(sheet string) string {
	return fmt.Sprintf("%s/documents/%s/sheets/%s", c.baseURL, c.documentID, sheet)
}

// checkStatus обрабатывает статус-коды ответа сервиса документов
func (c *Client) checkStatus(resp *http.Response, op string) error {
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSheetNotFound, op)
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - status %d: %s", ErrRemoteUnavailable, op, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrInvalidResponse, op, resp.StatusCode, string(body))
	}
}
