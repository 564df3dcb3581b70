package create_booking

import (
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/internal/store"
	"github.com/flexispot/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	User         string `json:"user" validate:"required,max=128"`
	ResourceType string `json:"resourceType" validate:"required,oneof=desk room"`
	ResourceID   int64  `json:"resourceId" validate:"required"`
	DateISO      string `json:"dateISO" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	User         string `json:"user"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	DateISO      string `json:"dateISO"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ToStoreRequest конвертирует HTTP запрос в модель store (с парсингом времени)
func (r *CreateBookingRequest) ToStoreRequest() (*store.BookRequest, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &store.BookRequest{
		User:         r.User,
		ResourceType: domain.ResourceType(r.ResourceType),
		ResourceID:   r.ResourceID,
		DateISO:      r.DateISO,
		StartTime:    startTime,
		EndTime:      endTime,
	}, nil
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		User:         b.User,
		ResourceType: string(b.ResourceType),
		ResourceID:   b.ResourceID,
		DateISO:      b.DateISO,
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
	}
}
