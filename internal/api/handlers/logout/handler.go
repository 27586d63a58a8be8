package logout

import (
	"net/http"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	"github.com/dmcwh/WRS-ReservationService/internal/api/middleware"
)

const msgLoggedOut = "sesión cerrada"

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	h.sessions.Destroy(token)

	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		h.logger.Info("POST /auth/logout - Session destroyed for supplier=%s", session.SupplierID)
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgLoggedOut})
}
