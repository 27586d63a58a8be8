package sheetstore

import "errors"

var (
	// ErrRemoteUnavailable возвращается при сетевых сбоях и таймаутах
	// обращения к удалённому документу
	ErrRemoteUnavailable = errors.New("sheetstore client: remote store unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("sheetstore client: invalid response")

	// ErrSheetNotFound возвращается, когда лист документа не найден
	ErrSheetNotFound = errors.New("sheetstore client: sheet not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheetstore client: internal error")
)
