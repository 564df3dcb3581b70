package remove_exception

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flexispot/booking-service/internal/api/handlers"
)

const msgInvalidExceptionID = "invalid exception id"

type Handler struct {
	store  ReservationStore
	logger Logger
}

func NewHandler(store ReservationStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/exceptions/{exceptionId}
// Удаление отсутствующего исключения — no-op с успехом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /exceptions/{id} - Invalid exception id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.store.RemoveException(r.Context(), exceptionID); err != nil {
		h.logger.Error("DELETE /exceptions/{id} - Failed: id=%d, error=%v", exceptionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /exceptions/{id} - Exception removed: id=%d", exceptionID)
	w.WriteHeader(http.StatusNoContent)
}
