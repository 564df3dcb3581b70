package remove_exception

import "context"

// ReservationStore интерфейс store для удаления исключений
type ReservationStore interface {
	RemoveException(ctx context.Context, exceptionID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
