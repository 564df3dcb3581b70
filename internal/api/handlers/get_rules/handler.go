package get_rules

import (
	"net/http"

	"github.com/flexispot/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := RulesAndExceptionsResponse{
		Rules:      FromDomainRules(h.store.Rules()),
		Exceptions: FromDomainExceptions(h.store.Exceptions()),
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
