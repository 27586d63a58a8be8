package authenticate_supplier

import (
	"context"

	"github.com/dmcwh/WRS-ReservationService/internal/integrations/sheetstore"
)

// CredentialsLoader интерфейс загрузки учётных данных из Identity Store
type CredentialsLoader interface {
	LoadCredentials(ctx context.Context) ([]sheetstore.CredentialRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
