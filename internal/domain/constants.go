package domain

// Default rule values
const (
	DefaultMaxBookingsPerUserPerDay = 2
)

// Business validation constants
const (
	MaxLabelLength = 64
	MaxUserLength  = 128
	MaxZoneLength  = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
