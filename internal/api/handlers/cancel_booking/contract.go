package cancel_booking

import "context"

// ReservationStore интерфейс store для отмены бронирования
type ReservationStore interface {
	Cancel(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
