package store

import (
	"context"

	"github.com/flexispot/booking-service/internal/domain"
)

// RulesRepository интерфейс долговременного хранилища правил.
// Запись best-effort: ошибка Save не откатывает изменения в памяти.
type RulesRepository interface {
	Load(ctx context.Context) (*domain.Rules, error)
	Save(ctx context.Context, rules *domain.Rules) error
}

// Metrics интерфейс для записи метрик операций store
type Metrics interface {
	SetActiveBookings(n int)
	RecordBookingOperation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
