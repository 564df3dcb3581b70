package update_rules

import (
	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/pkg/types"
)

// TimeBlockModel HTTP модель блока времени
type TimeBlockModel struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// UpdateRulesRequest частичное обновление правил: непереданные поля не
// меняются, переданные заменяют значение целиком
type UpdateRulesRequest struct {
	MaxBookingsPerUserPerDay *int              `json:"maxBookingsPerUserPerDay,omitempty"`
	AllowedTimeBlocks        *[]TimeBlockModel `json:"allowedTimeBlocks,omitempty" validate:"omitempty,dive"`
	RestrictedZones          *[]string         `json:"restrictedZones,omitempty"`
}

// RulesResponse HTTP модель правил после обновления
type RulesResponse struct {
	MaxBookingsPerUserPerDay int              `json:"maxBookingsPerUserPerDay"`
	AllowedTimeBlocks        []TimeBlockModel `json:"allowedTimeBlocks"`
	RestrictedZones          []string         `json:"restrictedZones"`
}

// ToDomainUpdate конвертирует HTTP запрос в domain модель (с парсингом времени)
func (r *UpdateRulesRequest) ToDomainUpdate() (domain.RulesUpdate, error) {
	upd := domain.RulesUpdate{
		MaxBookingsPerUserPerDay: r.MaxBookingsPerUserPerDay,
		RestrictedZones:          r.RestrictedZones,
	}

	if r.AllowedTimeBlocks != nil {
		blocks := make([]types.TimeBlock, 0, len(*r.AllowedTimeBlocks))
		for _, b := range *r.AllowedTimeBlocks {
			start, err := types.NewTimeStringFromString(b.Start)
			if err != nil {
				return domain.RulesUpdate{}, err
			}
			end, err := types.NewTimeStringFromString(b.End)
			if err != nil {
				return domain.RulesUpdate{}, err
			}
			blocks = append(blocks, types.TimeBlock{Start: start, End: end})
		}
		upd.AllowedTimeBlocks = &blocks
	}

	return upd, nil
}

// FromDomainRules конвертирует domain модель в HTTP response
func FromDomainRules(r domain.Rules) RulesResponse {
	blocks := make([]TimeBlockModel, 0, len(r.AllowedTimeBlocks))
	for _, b := range r.AllowedTimeBlocks {
		blocks = append(blocks, TimeBlockModel{Start: b.Start.String(), End: b.End.String()})
	}
	return RulesResponse{
		MaxBookingsPerUserPerDay: r.MaxBookingsPerUserPerDay,
		AllowedTimeBlocks:        blocks,
		RestrictedZones:          r.RestrictedZones,
	}
}
