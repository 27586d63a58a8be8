package middleware

import (
	"context"
	"net/http"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

// SessionTokenHeader заголовок с токеном сессии поставщика
const SessionTokenHeader = "X-Session-Token"

type contextKey string

const sessionContextKey contextKey = "supplier_session"

// SessionStore интерфейс проверки сессии по токену
type SessionStore interface {
	Get(token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// SessionAuth проверяет токен сессии и кладёт сессию в контекст запроса.
// Запросы без валидной сессии получают 401.
func SessionAuth(store SessionStore, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				log.Warn("%s %s - missing session token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "sesión requerida")
				return
			}

			session, err := store.Get(token)
			if err != nil {
				log.Warn("%s %s - invalid session token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "sesión inválida o expirada")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext возвращает сессию, положенную SessionAuth
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*domain.Session)
	return session, ok
}

// TokenFromRequest возвращает токен сессии из заголовка запроса
func TokenFromRequest(r *http.Request) string {
	return r.Header.Get(SessionTokenHeader)
}
