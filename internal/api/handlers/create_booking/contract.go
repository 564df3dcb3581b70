package create_booking

import (
	"context"

	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/internal/store"
)

// ReservationStore интерфейс store для создания бронирования
type ReservationStore interface {
	Book(ctx context.Context, req *store.BookRequest) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
