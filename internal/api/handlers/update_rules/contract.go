package update_rules

import (
	"context"

	"github.com/flexispot/booking-service/internal/domain"
)

// ReservationStore интерфейс store для обновления правил
type ReservationStore interface {
	UpdateRules(ctx context.Context, upd domain.RulesUpdate) (domain.Rules, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
