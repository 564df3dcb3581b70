package list_bookings

import "github.com/flexispot/booking-service/internal/domain"

// ReservationStore интерфейс store для чтения бронирований
type ReservationStore interface {
	Bookings() []*domain.Booking
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
