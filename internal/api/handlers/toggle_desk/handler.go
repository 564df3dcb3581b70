package toggle_desk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/store"
)

const (
	msgInvalidDeskID      = "invalid desk id"
	msgInvalidRequestBody = "invalid request body"
)

// ToggleDeskRequest HTTP request model
type ToggleDeskRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

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

// Handle PATCH /api/v1/desks/{deskId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /desks/{id}/availability - Invalid desk id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	var req ToggleDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /desks/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.store.ToggleDesk(r.Context(), deskID, *req.IsAvailable); err != nil {
		if errors.Is(err, store.ErrDeskNotFound) {
			h.logger.Warn("PATCH /desks/{id}/availability - Desk not found: id=%d", deskID)
			handlers.RespondNotFound(w, err.Error())
			return
		}
		h.logger.Error("PATCH /desks/{id}/availability - Failed: id=%d, error=%v", deskID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /desks/{id}/availability - Desk toggled: id=%d isAvailable=%t", deskID, *req.IsAvailable)
	w.WriteHeader(http.StatusNoContent)
}
