package login

import (
	"errors"
	"net/http"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	authenticateSupplier "github.com/dmcwh/WRS-ReservationService/internal/usecase/authenticate_supplier"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgMissingFields      = "usuario y contraseña son obligatorios"
	msgSupplierNotFound   = "usuario no encontrado"
	msgWrongSecret        = "contraseña incorrecta"
	msgIdentityDown       = "el servicio de credenciales no está disponible, intente nuevamente"
)

type Handler struct {
	useCase  AuthenticateUseCase
	sessions SessionService
	logger   Logger
}

func NewHandler(useCase AuthenticateUseCase, sessions SessionService, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &authenticateSupplier.Request{
		SupplierID: req.Supplier,
		Secret:     req.Secret,
	})
	if err != nil {
		switch {
		case errors.Is(err, authenticateSupplier.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, authenticateSupplier.ErrSupplierNotFound):
			h.logger.Warn("POST /auth/login - Supplier not found: %s", req.Supplier)
			handlers.RespondUnauthorized(w, msgSupplierNotFound)

		case errors.Is(err, authenticateSupplier.ErrWrongSecret):
			h.logger.Warn("POST /auth/login - Wrong secret for supplier: %s", req.Supplier)
			handlers.RespondUnauthorized(w, msgWrongSecret)

		case errors.Is(err, authenticateSupplier.ErrRemoteUnavailable):
			h.logger.Error("POST /auth/login - Identity store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgIdentityDown)

		default:
			h.logger.Error("POST /auth/login - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	session := h.sessions.Create(result.SupplierID, result.PrimaryEmail, result.CCEmails)

	h.logger.Info("POST /auth/login - Session issued for supplier=%s", result.SupplierID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:        session.Token,
		SupplierID:   session.SupplierID,
		PrimaryEmail: session.PrimaryEmail,
		CCEmails:     session.CCEmails,
		ExpiresAt:    formatExpiry(session.ExpiresAt),
	})
}
