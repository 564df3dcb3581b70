package export_calendar

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/ics"
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

// Handle GET /api/v1/bookings/{bookingId}/calendar
// Отдает бронирование как iCalendar документ (text/calendar).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/calendar - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.store.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id}/calendar - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, err.Error())
			return
		}
		h.logger.Error("GET /bookings/{id}/calendar - Failed: id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	label, err := h.store.ResourceLabel(booking.ResourceType, booking.ResourceID)
	if err != nil {
		h.logger.Error("GET /bookings/{id}/calendar - Resource label lookup failed: id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	document := ics.MakeEvent(booking, label, time.Now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=booking-%d.ics", booking.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))

	h.logger.Info("GET /bookings/{id}/calendar - Exported booking id=%d", bookingID)
}
