package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/store"
)

const msgInvalidBookingID = "invalid booking id"

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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.store.Cancel(r.Context(), bookingID); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, err.Error())
			return
		}
		h.logger.Error("DELETE /bookings/{id} - Failed to cancel: id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: id=%d", bookingID)
	w.WriteHeader(http.StatusNoContent)
}
