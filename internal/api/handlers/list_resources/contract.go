package list_resources

import "github.com/flexispot/booking-service/internal/domain"

// ReservationStore интерфейс store для чтения списков ресурсов
type ReservationStore interface {
	Desks() []*domain.Desk
	Rooms() []*domain.Room
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
