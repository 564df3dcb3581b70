package domain

import "strings"

// ResourceType identifies the kind of bookable resource
type ResourceType string

const (
	ResourceDesk ResourceType = "desk"
	ResourceRoom ResourceType = "room"
)

// IsValid reports whether the resource type is one of the known kinds
func (t ResourceType) IsValid() bool {
	return t == ResourceDesk || t == ResourceRoom
}

// Desk represents a bookable desk.
// IsAvailable is a global administrative flag, independent of any time-based
// booking: a disabled desk is hidden from the seat map but bookings against it
// are still accepted.
type Desk struct {
	ID          int64
	Label       string
	Zone        string
	IsAvailable bool
}

// Room represents a bookable meeting room.
// Rooms carry the same IsAvailable flag as desks but have no toggle operation;
// they are read-only after seeding.
type Room struct {
	ID          int64
	Label       string
	Capacity    int
	IsAvailable bool
}

// NormalizeZone canonicalizes a zone identifier for comparison
// (trimmed, case-folded).
func NormalizeZone(zone string) string {
	return strings.ToLower(strings.TrimSpace(zone))
}
