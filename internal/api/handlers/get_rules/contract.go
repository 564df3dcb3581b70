package get_rules

import "github.com/flexispot/booking-service/internal/domain"

// ReservationStore интерфейс store для чтения правил и исключений
type ReservationStore interface {
	Rules() domain.Rules
	Exceptions() []*domain.Exception
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
