package add_exception

import (
	"context"

	"github.com/flexispot/booking-service/internal/domain"
)

// ReservationStore интерфейс store для создания исключений
type ReservationStore interface {
	AddException(ctx context.Context, user string, key domain.RuleKey, limit *int) (*domain.Exception, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
