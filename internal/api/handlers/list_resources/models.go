package list_resources

import "github.com/flexispot/booking-service/internal/domain"

// DeskResponse HTTP модель стола
type DeskResponse struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Zone        string `json:"zone"`
	IsAvailable bool   `json:"isAvailable"`
}

// RoomResponse HTTP модель комнаты
type RoomResponse struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
}

// DeskListResponse список столов
type DeskListResponse struct {
	Desks []DeskResponse `json:"desks"`
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainDesks конвертирует domain модели в HTTP response
func FromDomainDesks(desks []*domain.Desk) *DeskListResponse {
	out := &DeskListResponse{Desks: make([]DeskResponse, 0, len(desks))}
	for _, d := range desks {
		out.Desks = append(out.Desks, DeskResponse{
			ID:          d.ID,
			Label:       d.Label,
			Zone:        d.Zone,
			IsAvailable: d.IsAvailable,
		})
	}
	return out
}

// FromDomainRooms конвертирует domain модели в HTTP response
func FromDomainRooms(rooms []*domain.Room) *RoomListResponse {
	out := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, RoomResponse{
			ID:          r.ID,
			Label:       r.Label,
			Capacity:    r.Capacity,
			IsAvailable: r.IsAvailable,
		})
	}
	return out
}
