package store

import "errors"

// Сообщения ошибок, начинающиеся с заглавной буквы, — фиксированный контракт
// с потребителями (отдаются как reason без изменений).
var (
	// ErrInvalidResourceType возвращается при неизвестном типе ресурса
	ErrInvalidResourceType = errors.New("Invalid resourceType")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("Desk not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("Room not found")

	// ErrResourceBooked возвращается при пересечении с существующим бронированием
	ErrResourceBooked = errors.New("Resource is already booked for requested time")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("Booking not found")

	// ErrUnknownRuleKey возвращается при нераспознанном ключе правила
	ErrUnknownRuleKey = errors.New("unknown rule key")

	// ErrExceptionExists возвращается при попытке создать дубликат исключения
	// для пары (user, ruleKey)
	ErrExceptionExists = errors.New("exception already exists for user and rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
