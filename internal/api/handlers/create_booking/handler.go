package create_booking

import (
	"errors"
	"net/http"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/rules"
	"github.com/flexispot/booking-service/internal/store"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
)

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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	storeReq, err := req.ToStoreRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	booking, err := h.store.Book(r.Context(), storeReq)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDeskNotFound), errors.Is(err, store.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Resource not found: %s=%d", req.ResourceType, req.ResourceID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, store.ErrResourceBooked):
			h.logger.Warn("POST /bookings - Overlap: %s=%d date=%s", req.ResourceType, req.ResourceID, req.DateISO)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, rules.ErrQuotaExceeded),
			errors.Is(err, rules.ErrOutsideAllowedBlocks),
			errors.Is(err, rules.ErrRestrictedZone):
			// Отказ по правилам: reason отдаётся без изменений
			h.logger.Warn("POST /bookings - Rejected by rules: user=%s: %v", req.User, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrInvalidResourceType):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", req.User, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%s", booking.ID, req.User)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBooking(booking))
}
