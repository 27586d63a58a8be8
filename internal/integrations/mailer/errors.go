package mailer

import "errors"

var (
	// ErrNoRecipient возвращается при попытке отправить письмо без адресата
	ErrNoRecipient = errors.New("mailer: no recipient address")

	// ErrComposeMessage возвращается при ошибке формирования письма
	ErrComposeMessage = errors.New("mailer: failed to compose message")

	// ErrSendFailed возвращается при ошибке отправки через SMTP.
	// Отправка уведомления best-effort: эта ошибка никогда не откатывает
	// уже зафиксированное бронирование.
	ErrSendFailed = errors.New("mailer: failed to send message")
)
