package logout

// SessionService интерфейс уничтожения сессий
type SessionService interface {
	Destroy(token string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
