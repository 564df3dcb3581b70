package domain

import (
	"time"

	"github.com/flexispot/booking-service/pkg/types"
)

// Booking represents a committed reservation of a desk or room for a
// half-open [StartTime, EndTime) window on a single date.
// Bookings are immutable once created; the only lifecycle transitions are
// creation (successful Book) and deletion (Cancel).
type Booking struct {
	ID           int64
	User         string
	ResourceType ResourceType
	ResourceID   int64
	DateISO      string // YYYY-MM-DD
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// Overlaps reports whether two bookings collide: same resource, same date,
// intersecting half-open intervals (minute granularity). Touching intervals
// do not overlap.
func (b *Booking) Overlaps(other *Booking) bool {
	if b.ResourceType != other.ResourceType || b.ResourceID != other.ResourceID || b.DateISO != other.DateISO {
		return false
	}
	aStart, err := b.StartTime.Minutes()
	if err != nil {
		return false
	}
	aEnd, err := b.EndTime.Minutes()
	if err != nil {
		return false
	}
	bStart, err := other.StartTime.Minutes()
	if err != nil {
		return false
	}
	bEnd, err := other.EndTime.Minutes()
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ValidDateISO reports whether s is a well-formed YYYY-MM-DD date
func ValidDateISO(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
