package get_supplier_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmcwh/WRS-ReservationService/internal/api/handlers"
	"github.com/dmcwh/WRS-ReservationService/internal/api/middleware"
)

const (
	msgForeignSupplier = "no puede consultar reservas de otro proveedor"
	msgLedgerDown      = "el registro de reservas no está disponible, intente nuevamente"
)

type Handler struct {
	cache  LedgerCache
	logger Logger
}

func NewHandler(cache LedgerCache, logger Logger) *Handler {
	return &Handler{
		cache:  cache,
		logger: logger,
	}
}

// Handle GET /api/v1/suppliers/{supplierId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "sesión requerida")
		return
	}

	supplierID := mux.Vars(r)["supplierId"]
	if supplierID != session.SupplierID {
		h.logger.Warn("GET /suppliers/%s/bookings - Denied for session supplier=%s",
			supplierID, session.SupplierID)
		handlers.RespondForbidden(w, msgForeignSupplier)
		return
	}

	snapshot, err := h.cache.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /suppliers/%s/bookings - Ledger unavailable: %v", supplierID, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgLedgerDown)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(supplierID, snapshot.BookingsForSupplier(supplierID)))
}
