package update_rules

import (
	"errors"
	"net/http"

	"github.com/flexispot/booking-service/internal/api/handlers"
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

// Handle PUT /api/v1/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PUT /rules - Failed to parse time blocks: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	updated, err := h.store.UpdateRules(r.Context(), upd)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			h.logger.Warn("PUT /rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /rules - Failed to update rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /rules - Rules updated")
	handlers.RespondJSON(w, http.StatusOK, FromDomainRules(updated))
}
