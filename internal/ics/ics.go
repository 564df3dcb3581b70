// Package ics formats bookings as iCalendar (RFC 5545) event documents.
// The output is consumed by third-party calendar applications, so the exact
// byte layout (CRLF joiner, marker order, property spelling) is a contract.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/flexispot/booking-service/internal/domain"
)

const (
	prodID    = "-//flexispot//EN"
	uidDomain = "flexispot.local"
)

// MakeEvent renders a single-event VCALENDAR document for a committed booking.
// The UID is derived from the booking id; dtstamp is the creation timestamp of
// the document (callers pass time.Now(), tests pass a fixed instant).
func MakeEvent(booking *domain.Booking, resourceLabel string, dtstamp time.Time) string {
	uid := fmt.Sprintf("booking-%d@%s", booking.ID, uidDomain)
	stamp := dtstamp.UTC().Format("20060102T150405Z")
	dtstart := toICSTimestamp(booking.DateISO, booking.StartTime.String())
	dtend := toICSTimestamp(booking.DateISO, booking.EndTime.String())

	summary := fmt.Sprintf("%s booking — %s", booking.ResourceType, resourceLabel)
	description := fmt.Sprintf("Booked by: %s\nResource ID: %d", booking.User, booking.ResourceID)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + stamp,
		"DTSTART:" + dtstart,
		"DTEND:" + dtend,
		"SUMMARY:" + summary,
		"DESCRIPTION:" + description,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// toICSTimestamp collapses "YYYY-MM-DD" + "HH:MM" into "YYYYMMDDTHHMM00"
func toICSTimestamp(dateISO, hhmm string) string {
	date := strings.ReplaceAll(dateISO, "-", "")
	clock := strings.ReplaceAll(hhmm, ":", "")
	return date + "T" + clock + "00"
}
