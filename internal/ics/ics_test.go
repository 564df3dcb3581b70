package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexispot/booking-service/internal/domain"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1756650000000,
		User:         "alice",
		ResourceType: domain.ResourceDesk,
		ResourceID:   7,
		DateISO:      "2025-09-02",
		StartTime:    "10:00",
		EndTime:      "11:30",
	}
}

func TestMakeEvent_Layout(t *testing.T) {
	dtstamp := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	doc := MakeEvent(testBooking(), "Desk A7", dtstamp)

	// строки соединены именно CRLF, без завершающего перевода строки
	assert.False(t, strings.HasSuffix(doc, "\r\n"))
	lines := strings.Split(doc, "\r\n")
	require.Len(t, lines, 13)

	expected := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//flexispot//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:booking-1756650000000@flexispot.local",
		"DTSTAMP:20250901T120000Z",
		"DTSTART:20250902T100000",
		"DTEND:20250902T113000",
		"SUMMARY:desk booking — Desk A7",
		"DESCRIPTION:Booked by: alice\nResource ID: 7",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	assert.Equal(t, expected, lines)
}

func TestMakeEvent_DTStampInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	dtstamp := time.Date(2025, 9, 1, 15, 0, 0, 0, loc)

	doc := MakeEvent(testBooking(), "Desk A7", dtstamp)
	assert.Contains(t, doc, "DTSTAMP:20250901T120000Z")
}

func TestMakeEvent_RoundTrip(t *testing.T) {
	booking := testBooking()
	doc := MakeEvent(booking, "Room A1", time.Now())

	var dtstart, dtend string
	for _, line := range strings.Split(doc, "\r\n") {
		if v, ok := strings.CutPrefix(line, "DTSTART:"); ok {
			dtstart = v
		}
		if v, ok := strings.CutPrefix(line, "DTEND:"); ok {
			dtend = v
		}
	}
	require.NotEmpty(t, dtstart)
	require.NotEmpty(t, dtend)

	// дата и время восстанавливаются из timestamp'ов без потерь
	start, err := time.Parse("20060102T150405", dtstart)
	require.NoError(t, err)
	end, err := time.Parse("20060102T150405", dtend)
	require.NoError(t, err)

	assert.Equal(t, booking.DateISO, start.Format("2006-01-02"))
	assert.Equal(t, booking.StartTime.String(), start.Format("15:04"))
	assert.Equal(t, booking.EndTime.String(), end.Format("15:04"))
}

func TestMakeEvent_RoomSummary(t *testing.T) {
	booking := testBooking()
	booking.ResourceType = domain.ResourceRoom
	booking.ResourceID = 2

	doc := MakeEvent(booking, "Room A2", time.Now())
	assert.Contains(t, doc, "SUMMARY:room booking — Room A2")
	assert.Contains(t, doc, "DESCRIPTION:Booked by: alice\nResource ID: 2")
}
