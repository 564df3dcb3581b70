package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/internal/store"
	"github.com/flexispot/booking-service/pkg/types"
)

const msgInvalidQuery = "invalid availability query"

// AvailabilityResponse ответ на запрос доступности
type AvailabilityResponse struct {
	Available bool `json:"available"`
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

// Handle GET /api/v1/availability?resourceType=&resourceId=&date=&startTime=&endTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resourceID, err := strconv.ParseInt(q.Get("resourceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid resourceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	startTime, err := types.NewTimeStringFromString(q.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	endTime, err := types.NewTimeStringFromString(q.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid endTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	available, err := h.store.IsResourceAvailableAt(
		domain.ResourceType(q.Get("resourceType")),
		resourceID,
		q.Get("date"),
		startTime,
		endTime,
	)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) || errors.Is(err, store.ErrInvalidResourceType) {
			h.logger.Warn("GET /availability - Invalid query: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /availability - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}
