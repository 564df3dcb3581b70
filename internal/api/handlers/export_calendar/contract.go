package export_calendar

import "github.com/flexispot/booking-service/internal/domain"

// ReservationStore интерфейс store для экспорта бронирования в календарь
type ReservationStore interface {
	GetBooking(bookingID int64) (*domain.Booking, error)
	ResourceLabel(resourceType domain.ResourceType, resourceID int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
