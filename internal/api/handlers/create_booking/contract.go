package create_booking

import (
	"context"

	createBooking "github.com/dmcwh/WRS-ReservationService/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// SessionService интерфейс уничтожения сессии после успешного коммита
type SessionService interface {
	Destroy(token string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
