package store

import "github.com/flexispot/booking-service/internal/domain"

// Seed начальные данные store: столы и комнаты создаются один раз при
// инициализации и дальше не добавляются и не удаляются.
type Seed struct {
	Desks []*domain.Desk
	Rooms []*domain.Room
}

// DefaultSeed возвращает демонстрационный набор: 12 столов в зонах A и B
// (часть выключена администратором) и 4 комнаты.
func DefaultSeed() Seed {
	return Seed{
		Desks: []*domain.Desk{
			{ID: 1, Label: "D-1", Zone: "A", IsAvailable: true},
			{ID: 2, Label: "D-2", Zone: "A", IsAvailable: true},
			{ID: 3, Label: "D-3", Zone: "A", IsAvailable: false},
			{ID: 4, Label: "D-4", Zone: "A", IsAvailable: true},
			{ID: 5, Label: "D-5", Zone: "A", IsAvailable: true},
			{ID: 6, Label: "D-6", Zone: "B", IsAvailable: false},
			{ID: 7, Label: "D-7", Zone: "B", IsAvailable: true},
			{ID: 8, Label: "D-8", Zone: "B", IsAvailable: true},
			{ID: 9, Label: "D-9", Zone: "B", IsAvailable: true},
			{ID: 10, Label: "D-10", Zone: "B", IsAvailable: true},
			{ID: 11, Label: "D-11", Zone: "B", IsAvailable: false},
			{ID: 12, Label: "D-12", Zone: "A", IsAvailable: true},
		},
		Rooms: []*domain.Room{
			{ID: 1, Label: "Room A1", Capacity: 4, IsAvailable: true},
			{ID: 2, Label: "Room A2", Capacity: 8, IsAvailable: true},
			{ID: 3, Label: "Room B1", Capacity: 6, IsAvailable: false},
			{ID: 4, Label: "Room B2", Capacity: 10, IsAvailable: true},
		},
	}
}
