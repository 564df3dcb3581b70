package toggle_desk

import "context"

// ReservationStore интерфейс store для переключения доступности стола
type ReservationStore interface {
	ToggleDesk(ctx context.Context, deskID int64, isAvailable bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
