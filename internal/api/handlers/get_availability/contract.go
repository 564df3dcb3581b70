package get_availability

import (
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/pkg/types"
)

// ReservationStore интерфейс store для запроса доступности окна
type ReservationStore interface {
	IsResourceAvailableAt(resourceType domain.ResourceType, resourceID int64, dateISO string, start, end types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
