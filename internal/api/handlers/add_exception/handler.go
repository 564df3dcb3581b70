package add_exception

import (
	"errors"
	"net/http"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/internal/store"
)

const msgInvalidRequestBody = "invalid request body"

// AddExceptionRequest HTTP request model.
// Limit обязателен только для maxBookingsPerUserPerDay.
type AddExceptionRequest struct {
	User    string `json:"user" validate:"required,max=128"`
	RuleKey string `json:"ruleKey" validate:"required"`
	Limit   *int   `json:"limit,omitempty"`
}

// ExceptionResponse HTTP response model
type ExceptionResponse struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	RuleKey string `json:"ruleKey"`
	Limit   *int   `json:"limit,omitempty"`
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

// Handle POST /api/v1/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	exc, err := h.store.AddException(r.Context(), req.User, domain.RuleKey(req.RuleKey), req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownRuleKey), errors.Is(err, store.ErrInvalidInput):
			h.logger.Warn("POST /exceptions - Invalid input: user=%s key=%s: %v", req.User, req.RuleKey, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, store.ErrExceptionExists):
			h.logger.Warn("POST /exceptions - Duplicate: user=%s key=%s", req.User, req.RuleKey)
			handlers.RespondConflict(w, err.Error())

		default:
			h.logger.Error("POST /exceptions - Failed: user=%s key=%s: %v", req.User, req.RuleKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /exceptions - Exception created: id=%d user=%s key=%s", exc.ID, exc.User, exc.Key)
	handlers.RespondJSON(w, http.StatusCreated, ExceptionResponse{
		ID:      exc.ID,
		User:    exc.User,
		RuleKey: string(exc.Key),
		Limit:   exc.Limit,
	})
}
