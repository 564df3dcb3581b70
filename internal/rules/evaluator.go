package rules

import (
	"github.com/flexispot/booking-service/internal/domain"
)

// Context данные, относительно которых проверяется кандидат:
// текущие бронирования, правила, исключения и столы (для проверки зон).
// Evaluator ничего не мутирует и не хранит.
type Context struct {
	Bookings   []*domain.Booking
	Rules      domain.Rules
	Exceptions []*domain.Exception
	Desks      []*domain.Desk
}

// findException возвращает исключение пользователя по ключу правила.
// Store гарантирует уникальность пары (user, key) при вставке.
func (c *Context) findException(user string, key domain.RuleKey) *domain.Exception {
	for _, e := range c.Exceptions {
		if e.User == user && e.Key == key {
			return e
		}
	}
	return nil
}

// findDesk возвращает стол по id (nil, если не найден)
func (c *Context) findDesk(id int64) *domain.Desk {
	for _, d := range c.Desks {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Validate проверяет кандидата на бронирование против правил.
// Чистая функция: детерминирована, без побочных эффектов.
// nil означает «принять»; текст ошибки — готовый reason для пользователя.
//
// Проверки по порядку (первый отказ завершает проверку):
//  1. дневной лимит бронирований (с учётом исключения пользователя)
//  2. вхождение окна в разрешённые блоки времени
//  3. закрытые зоны (только для столов) — единственное место, где
//     выполняется эта проверка
func Validate(candidate *domain.Booking, rctx Context) error {
	if err := checkDailyQuota(candidate, &rctx); err != nil {
		return err
	}
	if err := checkAllowedBlocks(candidate, &rctx); err != nil {
		return err
	}
	return checkRestrictedZone(candidate, &rctx)
}

// checkDailyQuota проверяет дневной лимит бронирований пользователя
func checkDailyQuota(candidate *domain.Booking, rctx *Context) error {
	effectiveMax := rctx.Rules.MaxBookingsPerUserPerDay
	if ex := rctx.findException(candidate.User, domain.RuleMaxBookingsPerUserPerDay); ex != nil && ex.Limit != nil {
		effectiveMax = *ex.Limit
	}

	count := 0
	for _, b := range rctx.Bookings {
		if b.User == candidate.User && b.DateISO == candidate.DateISO {
			count++
		}
	}

	if count >= effectiveMax {
		return ErrQuotaExceeded
	}
	return nil
}

// checkAllowedBlocks проверяет, что окно [start, end) целиком помещается
// хотя бы в один разрешённый блок. Наличие исключения allowedTimeBlocks
// снимает проверку полностью (значение исключения не используется).
func checkAllowedBlocks(candidate *domain.Booking, rctx *Context) error {
	if rctx.findException(candidate.User, domain.RuleAllowedTimeBlocks) != nil {
		return nil
	}

	for _, block := range rctx.Rules.AllowedTimeBlocks {
		if block.Contains(candidate.StartTime, candidate.EndTime) {
			return nil
		}
	}
	return ErrOutsideAllowedBlocks
}

// checkRestrictedZone отклоняет бронирование стола в закрытой зоне.
// Для комнат проверка не применяется. Исключение restrictedZones снимает
// ограничение для конкретного пользователя.
func checkRestrictedZone(candidate *domain.Booking, rctx *Context) error {
	if candidate.ResourceType != domain.ResourceDesk {
		return nil
	}

	desk := rctx.findDesk(candidate.ResourceID)
	if desk == nil {
		// Существование ресурса проверяет store до вызова evaluator
		return nil
	}

	if !rctx.Rules.IsZoneRestricted(desk.Zone) {
		return nil
	}
	if rctx.findException(candidate.User, domain.RuleRestrictedZones) != nil {
		return nil
	}
	return &RestrictedZoneError{Zone: desk.Zone}
}
