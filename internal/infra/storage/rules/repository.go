package rules

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/flexispot/booking-service/internal/domain"
)

// rulesKey фиксированный ключ единственной записи с правилами
const rulesKey = "rules"

const schema = `
CREATE TABLE IF NOT EXISTS rules_kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// Repository хранит сериализованные правила в локальном SQLite файле.
// Формат значения — деталь реализации; контракт только в том, что
// Save → Load восстанавливает тот же объект Rules.
type Repository struct {
	db *sql.DB
}

// Open открывает (или создаёт) базу правил по указанному пути.
// SQLite поддерживает одного писателя, поэтому пул ограничен одним соединением.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrOpenDatabase, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrOpenDatabase, err)
	}

	return &Repository{db: db}, nil
}

// Close закрывает соединение с базой
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load читает сохранённые правила.
// Возвращает ErrRulesNotFound, если правила ещё не сохранялись.
func (r *Repository) Load(ctx context.Context) (*domain.Rules, error) {
	query, args, err := squirrel.Select("value").
		From("rules_kv").
		Where(squirrel.Eq{"key": rulesKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var raw string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}

	var rules domain.Rules
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal value: %v", ErrDecode, err)
	}
	return &rules, nil
}

// Save записывает правила целиком (upsert по фиксированному ключу)
func (r *Repository) Save(ctx context.Context, rules *domain.Rules) error {
	raw, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal rules: %v", ErrEncode, err)
	}

	query, args, err := squirrel.Insert("rules_kv").
		Columns("key", "value").
		Values(rulesKey, string(raw)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
