package authenticate_supplier

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmcwh/WRS-ReservationService/internal/integrations/sheetstore"
)

// UseCase use case аутентификации поставщика.
//
// Сравнение паролей - точное совпадение со значением, которое отдаёт
// Identity Store. Никакая схема хеширования на этом уровне не
// предполагается: если хранилище начнёт отдавать хеши, логика сравнения
// переедет туда, а не сюда.
type UseCase struct {
	credentials CredentialsLoader
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(credentials CredentialsLoader, logger Logger) *UseCase {
	return &UseCase{
		credentials: credentials,
		logger:      logger,
	}
}

// Execute выполняет аутентификацию.
// Оба входа нормализуются (обрезка окружающих пробелов) до поиска.
// Порядок отказов: сначала ErrSupplierNotFound, затем ErrWrongSecret.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	supplierID := strings.TrimSpace(req.SupplierID)
	secret := strings.TrimSpace(req.Secret)

	if supplierID == "" || secret == "" {
		return nil, fmt.Errorf("%w: supplierID and secret are required", ErrInvalidInput)
	}

	uc.logger.Info("Authenticate: supplier=%s", supplierID)

	records, err := uc.credentials.LoadCredentials(ctx)
	if err != nil {
		uc.logger.Error("Authenticate: failed to load credentials: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	record, found := findSupplier(records, supplierID)
	if !found {
		uc.logger.Warn("Authenticate: supplier not found: %s", supplierID)
		return nil, ErrSupplierNotFound
	}

	if strings.TrimSpace(record.Secret) != secret {
		uc.logger.Warn("Authenticate: wrong secret for supplier=%s", supplierID)
		return nil, ErrWrongSecret
	}

	// Пустой email - валидное авторизованное состояние:
	// уведомление на границе просто станет no-op
	primaryEmail := strings.TrimSpace(record.Email)

	uc.logger.Info("Authenticate: success supplier=%s has_email=%t", supplierID, primaryEmail != "")

	return &Response{
		SupplierID:   supplierID,
		PrimaryEmail: primaryEmail,
		CCEmails:     ParseCCEmails(record.CCEmailsRaw),
	}, nil
}

// findSupplier ищет запись по нормализованному логину
func findSupplier(records []sheetstore.CredentialRecord, supplierID string) (sheetstore.CredentialRecord, bool) {
	for _, r := range records {
		if strings.TrimSpace(r.SupplierID) == supplierID {
			return r, true
		}
	}
	return sheetstore.CredentialRecord{}, false
}
