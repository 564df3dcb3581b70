package get_rules

import (
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/pkg/types"
)

// TimeBlockResponse HTTP модель разрешённого блока времени
type TimeBlockResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RulesResponse HTTP модель правил
type RulesResponse struct {
	MaxBookingsPerUserPerDay int                 `json:"maxBookingsPerUserPerDay"`
	AllowedTimeBlocks        []TimeBlockResponse `json:"allowedTimeBlocks"`
	RestrictedZones          []string            `json:"restrictedZones"`
}

// ExceptionResponse HTTP модель исключения
type ExceptionResponse struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	RuleKey string `json:"ruleKey"`
	Limit   *int   `json:"limit,omitempty"`
}

// RulesAndExceptionsResponse ответ GET /rules
type RulesAndExceptionsResponse struct {
	Rules      RulesResponse       `json:"rules"`
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// FromDomainRules конвертирует domain модель в HTTP response
func FromDomainRules(r domain.Rules) RulesResponse {
	blocks := make([]TimeBlockResponse, 0, len(r.AllowedTimeBlocks))
	for _, b := range r.AllowedTimeBlocks {
		blocks = append(blocks, FromDomainTimeBlock(b))
	}
	return RulesResponse{
		MaxBookingsPerUserPerDay: r.MaxBookingsPerUserPerDay,
		AllowedTimeBlocks:        blocks,
		RestrictedZones:          r.RestrictedZones,
	}
}

// FromDomainTimeBlock конвертирует блок времени в HTTP модель
func FromDomainTimeBlock(b types.TimeBlock) TimeBlockResponse {
	return TimeBlockResponse{Start: b.Start.String(), End: b.End.String()}
}

// FromDomainExceptions конвертирует исключения в HTTP модели
func FromDomainExceptions(excs []*domain.Exception) []ExceptionResponse {
	out := make([]ExceptionResponse, 0, len(excs))
	for _, e := range excs {
		out = append(out, ExceptionResponse{
			ID:      e.ID,
			User:    e.User,
			RuleKey: string(e.Key),
			Limit:   e.Limit,
		})
	}
	return out
}
