package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной форме кандидата
	// (ошибка вызывающего, автоматически не повторяется)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidSlot возвращается, когда слот не принадлежит календарю
	// на указанную дату (неизвестный или устаревший слот)
	ErrInvalidSlot = errors.New("create_booking: slot does not belong to the date's calendar")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSlotAlreadyTaken возвращается при легитимной конкуренции за слот:
	// вызывающему следует обновить доступность и дать пользователю выбрать заново
	ErrSlotAlreadyTaken = errors.New("create_booking: slot is already taken")

	// ErrRemoteUnavailable возвращается при сбое/таймауте загрузки ledger'а
	// до записи. Попытка завершилась чисто, частичного состояния нет;
	// безопасно повторить с backoff.
	ErrRemoteUnavailable = errors.New("create_booking: ledger store unavailable")

	// ErrCommitFailed возвращается при сбое записи в ledger. Исход неоднозначен:
	// запись могла частично пройти на стороне хранилища, поэтому вызывающий
	// обязан перечитать ledger, прежде чем считать попытку неуспешной.
	ErrCommitFailed = errors.New("create_booking: ledger write failed, outcome ambiguous")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
