package list_resources

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

// HandleDesks GET /api/v1/desks
func (h *Handler) HandleDesks(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainDesks(h.store.Desks()))
}

// HandleRooms GET /api/v1/rooms
func (h *Handler) HandleRooms(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainRooms(h.store.Rooms()))
}
