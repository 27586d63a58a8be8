package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/dmcwh/WRS-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "el parámetro date es obligatorio (formato YYYY-MM-DD)"
	msgInvalidDate    = "fecha inválida, use el formato YYYY-MM-DD"
	msgDateInPast     = "la fecha no puede estar en el pasado"
	msgDateTooFar     = "la fecha excede el horizonte de reserva"
	msgLedgerDown     = "el registro de reservas no está disponible, intente nuevamente"
	msgInvalidRequest = "solicitud inválida"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := parseDate(raw)
	if err != nil {
		h.logger.Warn("GET /slots - Malformed date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrRemoteUnavailable):
			h.logger.Error("GET /slots - Ledger unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLedgerDown)

		default:
			h.logger.Error("GET /slots - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}
