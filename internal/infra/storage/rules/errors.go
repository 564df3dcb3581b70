package rules

import "errors"

var (
	// ErrRulesNotFound возвращается, когда сохранённых правил ещё нет
	ErrRulesNotFound = errors.New("rules.repository: rules not found")

	// ErrOpenDatabase возвращается при ошибке открытия базы данных
	ErrOpenDatabase = errors.New("rules.repository: failed to open database")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации правил
	ErrEncode = errors.New("rules.repository: failed to encode rules")

	// ErrDecode возвращается при ошибке десериализации правил
	ErrDecode = errors.New("rules.repository: failed to decode rules")
)
