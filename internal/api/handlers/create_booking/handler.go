package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	"github.com/dmcwh/WRS-ReservationService/internal/api/middleware"
	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	createBooking "github.com/dmcwh/WRS-ReservationService/internal/usecase/create_booking"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidDate        = "fecha inválida, use el formato YYYY-MM-DD"
	msgDateInPast         = "la fecha no puede estar en el pasado"
	msgDateTooFar         = "la fecha excede el horizonte de reserva"
	msgInvalidInput       = "complete todos los campos: fecha, horario, cantidad de bultos y órdenes de compra"
	msgInvalidSlot        = "el horario seleccionado no pertenece al calendario de esa fecha"
	msgSlotTaken          = "el horario ya fue reservado, por favor elija otro"
	msgLedgerDown         = "el registro de reservas no está disponible, intente nuevamente"
	msgCommitFailed       = "no se pudo confirmar la reserva, verifique el estado antes de reintentar"
)

type Handler struct {
	useCase  CreateBookingUseCase
	sessions SessionService
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, sessions SessionService, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "sesión requerida")
		return
	}

	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings - Malformed date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		SupplierID:     session.SupplierID,
		Date:           date,
		Slot:           types.TimeString(req.Slot),
		PackageCount:   req.PackageCount,
		PurchaseOrders: req.PurchaseOrders,
		SupplierEmail:  session.PrimaryEmail,
		CCEmails:       session.CCEmails,
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrSlotAlreadyTaken):
			h.logger.Warn("POST /bookings - Slot conflict: supplier=%s date=%s slot=%s",
				session.SupplierID, req.Date, req.Slot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrRemoteUnavailable):
			h.logger.Error("POST /bookings - Ledger unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLedgerDown)

		case errors.Is(err, createBooking.ErrCommitFailed):
			h.logger.Error("POST /bookings - Commit failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCommitFailed)

		default:
			h.logger.Error("POST /bookings - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Сессия одноразовая: после успешного коммита цикл завершён
	h.sessions.Destroy(middleware.TokenFromRequest(r))

	h.logger.Info("POST /bookings - Committed: supplier=%s date=%s slot=%s",
		result.SupplierID, req.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, toResponse(result))
}
