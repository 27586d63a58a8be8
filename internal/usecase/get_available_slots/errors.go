package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrRemoteUnavailable возвращается, когда ledger недоступен.
	// Доступность в этот момент неизвестна - вызывающий решает, повторять
	// запрос или показать состояние "недоступно".
	ErrRemoteUnavailable = errors.New("get_available_slots: ledger store unavailable")
)
