package rules

import "errors"

// Тексты ошибок отдаются пользователю как есть (reason в ответе API),
// поэтому они сформулированы как готовые сообщения.
var (
	// ErrQuotaExceeded возвращается, когда пользователь исчерпал дневной лимит бронирований
	ErrQuotaExceeded = errors.New("maxBookingsPerUserPerDay exceeded")

	// ErrOutsideAllowedBlocks возвращается, когда запрошенное окно не помещается
	// целиком ни в один из разрешённых блоков (или время не парсится)
	ErrOutsideAllowedBlocks = errors.New("Requested time outside allowed time blocks")

	// ErrRestrictedZone целевая ошибка для errors.Is; конкретная зона
	// передаётся через RestrictedZoneError
	ErrRestrictedZone = errors.New("desk in restricted zone")
)

// RestrictedZoneError возвращается, когда стол находится в закрытой зоне
type RestrictedZoneError struct {
	Zone string
}

func (e *RestrictedZoneError) Error() string {
	return "Desk in restricted zone " + e.Zone
}

// Is сопоставляет ошибку с ErrRestrictedZone
func (e *RestrictedZoneError) Is(target error) bool {
	return target == ErrRestrictedZone
}
