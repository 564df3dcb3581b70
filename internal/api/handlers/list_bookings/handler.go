package list_bookings

import (
	"net/http"

	"github.com/flexispot/booking-service/internal/api/handlers"
	"github.com/flexispot/booking-service/internal/domain"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	User         string `json:"user"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	DateISO      string `json:"dateISO"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings := h.store.Bookings()

	resp := BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, fromDomain(b))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		User:         b.User,
		ResourceType: string(b.ResourceType),
		ResourceID:   b.ResourceID,
		DateISO:      b.DateISO,
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
	}
}
