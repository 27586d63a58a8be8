package login

import (
	"context"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	authenticateSupplier "github.com/dmcwh/WRS-ReservationService/internal/usecase/authenticate_supplier"
)

// AuthenticateUseCase интерфейс use case аутентификации
type AuthenticateUseCase interface {
	Execute(ctx context.Context, req *authenticateSupplier.Request) (*authenticateSupplier.Response, error)
}

// SessionService интерфейс выпуска сессий
type SessionService interface {
	Create(supplierID, primaryEmail string, ccEmails []string) *domain.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
