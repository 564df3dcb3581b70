package domain

import "github.com/flexispot/booking-service/pkg/types"

// RuleKey identifies one of the recognized booking rules.
// The set is closed: unrecognized keys are rejected at the boundary instead of
// being silently ignored.
type RuleKey string

const (
	RuleMaxBookingsPerUserPerDay RuleKey = "maxBookingsPerUserPerDay"
	RuleAllowedTimeBlocks        RuleKey = "allowedTimeBlocks"
	RuleRestrictedZones          RuleKey = "restrictedZones"
)

// IsValid reports whether the key is one of the recognized rules
func (k RuleKey) IsValid() bool {
	switch k {
	case RuleMaxBookingsPerUserPerDay, RuleAllowedTimeBlocks, RuleRestrictedZones:
		return true
	}
	return false
}

// Rules is the singleton booking configuration.
type Rules struct {
	MaxBookingsPerUserPerDay int               `json:"maxBookingsPerUserPerDay"`
	AllowedTimeBlocks        []types.TimeBlock `json:"allowedTimeBlocks"`
	RestrictedZones          []string          `json:"restrictedZones"`
}

// DefaultRules returns the configuration used until an administrator changes it
func DefaultRules() Rules {
	return Rules{
		MaxBookingsPerUserPerDay: DefaultMaxBookingsPerUserPerDay,
		AllowedTimeBlocks: []types.TimeBlock{
			{Start: "09:00", End: "18:00"},
		},
		RestrictedZones: []string{},
	}
}

// Clone returns a deep copy of the rules
func (r Rules) Clone() Rules {
	out := Rules{
		MaxBookingsPerUserPerDay: r.MaxBookingsPerUserPerDay,
		AllowedTimeBlocks:        make([]types.TimeBlock, len(r.AllowedTimeBlocks)),
		RestrictedZones:          make([]string, len(r.RestrictedZones)),
	}
	copy(out.AllowedTimeBlocks, r.AllowedTimeBlocks)
	copy(out.RestrictedZones, r.RestrictedZones)
	return out
}

// IsZoneRestricted reports whether the given zone is in the restricted set
// (zone comparison is normalized).
func (r Rules) IsZoneRestricted(zone string) bool {
	normalized := NormalizeZone(zone)
	for _, z := range r.RestrictedZones {
		if NormalizeZone(z) == normalized {
			return true
		}
	}
	return false
}

// RulesUpdate is a partial update of Rules: каждое непустое поле заменяет
// значение целиком (слияния списков поэлементно нет).
type RulesUpdate struct {
	MaxBookingsPerUserPerDay *int
	AllowedTimeBlocks        *[]types.TimeBlock
	RestrictedZones          *[]string
}

// Apply merges the update into r and returns the result
func (u RulesUpdate) Apply(r Rules) Rules {
	out := r.Clone()
	if u.MaxBookingsPerUserPerDay != nil {
		out.MaxBookingsPerUserPerDay = *u.MaxBookingsPerUserPerDay
	}
	if u.AllowedTimeBlocks != nil {
		out.AllowedTimeBlocks = make([]types.TimeBlock, len(*u.AllowedTimeBlocks))
		copy(out.AllowedTimeBlocks, *u.AllowedTimeBlocks)
	}
	if u.RestrictedZones != nil {
		out.RestrictedZones = make([]string, len(*u.RestrictedZones))
		copy(out.RestrictedZones, *u.RestrictedZones)
	}
	return out
}

// Exception is a per-user override of a default rule value.
// Limit is only meaningful for RuleMaxBookingsPerUserPerDay; for the other
// keys the mere presence of the exception suppresses the corresponding check.
// At most one exception may exist per (User, Key) pair.
type Exception struct {
	ID    int64
	User  string
	Key   RuleKey
	Limit *int
}
