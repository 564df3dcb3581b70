package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flexispot/booking-service/internal/domain"
	rulesRepo "github.com/flexispot/booking-service/internal/infra/storage/rules"
	"github.com/flexispot/booking-service/internal/rules"
	"github.com/flexispot/booking-service/pkg/types"
)

// Store владеет всеми коллекциями (столы, комнаты, бронирования, правила,
// исключения) и выполняет каждую операцию как единую критическую секцию.
// Последовательность read-validate-write в Book целиком проходит под mutex,
// поэтому два конкурентных бронирования одного окна не могут оба пройти
// проверку пересечений (check-then-act без блокировки давал бы TOCTOU гонку).
type Store struct {
	mu sync.Mutex

	desks    []*domain.Desk
	rooms    []*domain.Room
	bookings []*domain.Booking
	rules    domain.Rules
	excs     []*domain.Exception

	deskIndex map[int64]*domain.Desk
	roomIndex map[int64]*domain.Room

	lastBookingID   int64
	lastExceptionID int64

	repo    RulesRepository
	metrics Metrics
	logger  Logger
}

// BookRequest запрос на бронирование ресурса
type BookRequest struct {
	User         string
	ResourceType domain.ResourceType
	ResourceID   int64
	DateISO      string
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// New создает store c начальными данными.
// repo и metrics опциональны (nil отключает персистентность/метрики).
// Сохранённые правила загружаются при старте; при их отсутствии или ошибке
// чтения используются значения по умолчанию.
func New(ctx context.Context, seed Seed, repo RulesRepository, m Metrics, log Logger) *Store {
	s := &Store{
		desks:     make([]*domain.Desk, 0, len(seed.Desks)),
		rooms:     make([]*domain.Room, 0, len(seed.Rooms)),
		bookings:  make([]*domain.Booking, 0),
		rules:     domain.DefaultRules(),
		excs:      make([]*domain.Exception, 0),
		deskIndex: make(map[int64]*domain.Desk, len(seed.Desks)),
		roomIndex: make(map[int64]*domain.Room, len(seed.Rooms)),
		repo:      repo,
		metrics:   m,
		logger:    log,
	}

	for _, d := range seed.Desks {
		copied := *d
		s.desks = append(s.desks, &copied)
		s.deskIndex[copied.ID] = &copied
	}
	for _, r := range seed.Rooms {
		copied := *r
		s.rooms = append(s.rooms, &copied)
		s.roomIndex[copied.ID] = &copied
	}

	if repo != nil {
		persisted, err := repo.Load(ctx)
		switch {
		case err == nil:
			s.rules = persisted.Clone()
			s.logger.Info("Store: loaded persisted rules (maxPerDay=%d, blocks=%d, restrictedZones=%d)",
				s.rules.MaxBookingsPerUserPerDay, len(s.rules.AllowedTimeBlocks), len(s.rules.RestrictedZones))
		case errors.Is(err, rulesRepo.ErrRulesNotFound):
			s.logger.Info("Store: no persisted rules, using defaults")
		default:
			s.logger.Warn("Store: failed to load persisted rules, using defaults: %v", err)
		}
	}

	s.logger.Info("Store: initialized with %d desks, %d rooms", len(s.desks), len(s.rooms))
	return s
}

// Book бронирует ресурс на окно [StartTime, EndTime) указанной даты.
// Глобальный флаг IsAvailable ресурса намеренно не проверяется: он управляет
// только отображением на карте мест, бронированию не препятствует.
func (s *Store) Book(ctx context.Context, req *BookRequest) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Валидация входных данных
	if err := validateBookRequest(req); err != nil {
		s.logger.Warn("Book: validation failed: %v", err)
		s.recordOp("book", "invalid")
		return nil, err
	}

	// 2. Проверяем существование ресурса нужного типа
	var resourceLabel string
	switch req.ResourceType {
	case domain.ResourceDesk:
		desk, ok := s.deskIndex[req.ResourceID]
		if !ok {
			s.logger.Warn("Book: desk id=%d not found", req.ResourceID)
			s.recordOp("book", "not_found")
			return nil, ErrDeskNotFound
		}
		resourceLabel = desk.Label
	case domain.ResourceRoom:
		room, ok := s.roomIndex[req.ResourceID]
		if !ok {
			s.logger.Warn("Book: room id=%d not found", req.ResourceID)
			s.recordOp("book", "not_found")
			return nil, ErrRoomNotFound
		}
		resourceLabel = room.Label
	default:
		s.recordOp("book", "invalid")
		return nil, ErrInvalidResourceType
	}

	candidate := &domain.Booking{
		User:         req.User,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		DateISO:      req.DateISO,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	// 3. Проверяем правила (лимит, разрешённые блоки, закрытые зоны)
	if err := rules.Validate(candidate, rules.Context{
		Bookings:   s.bookings,
		Rules:      s.rules,
		Exceptions: s.excs,
		Desks:      s.desks,
	}); err != nil {
		s.logger.Warn("Book: rejected by rules: user=%s %s=%d date=%s: %v",
			req.User, req.ResourceType, req.ResourceID, req.DateISO, err)
		s.recordOp("book", "rejected")
		return nil, err
	}

	// 4. Проверяем пересечение с существующими бронированиями ресурса
	if s.overlapsExisting(candidate) {
		s.logger.Warn("Book: overlap: %s=%d date=%s window=%s-%s",
			req.ResourceType, req.ResourceID, req.DateISO, req.StartTime, req.EndTime)
		s.recordOp("book", "conflict")
		return nil, ErrResourceBooked
	}

	// 5. Фиксируем бронирование
	candidate.ID = s.nextBookingID()
	s.bookings = append(s.bookings, candidate)

	s.logger.Info("Book: created booking id=%d user=%s %s=%d (%q) date=%s window=%s-%s",
		candidate.ID, req.User, req.ResourceType, req.ResourceID, resourceLabel,
		req.DateISO, req.StartTime, req.EndTime)
	s.recordOp("book", "created")
	if s.metrics != nil {
		s.metrics.SetActiveBookings(len(s.bookings))
	}
	result := *candidate
	return &result, nil
}

// Cancel удаляет бронирование по id.
// Повторная отмена возвращает ErrBookingNotFound, коллекция не меняется.
func (s *Store) Cancel(ctx context.Context, bookingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.logger.Info("Cancel: removed booking id=%d", bookingID)
			s.recordOp("cancel", "cancelled")
			if s.metrics != nil {
				s.metrics.SetActiveBookings(len(s.bookings))
			}
			return nil
		}
	}

	s.logger.Warn("Cancel: booking id=%d not found", bookingID)
	s.recordOp("cancel", "not_found")
	return ErrBookingNotFound
}

// IsResourceAvailableAt сообщает, свободно ли окно [start, end) ресурса на
// указанную дату. Чисто временной запрос: глобальный флаг IsAvailable и
// правила бронирования не учитываются.
func (s *Store) IsResourceAvailableAt(resourceType domain.ResourceType, resourceID int64, dateISO string, start, end types.TimeString) (bool, error) {
	if !resourceType.IsValid() {
		return false, ErrInvalidResourceType
	}
	if !domain.ValidDateISO(dateISO) {
		return false, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, dateISO)
	}
	if err := start.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	window := &domain.Booking{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		DateISO:      dateISO,
		StartTime:    start,
		EndTime:      end,
	}
	return !s.overlapsExisting(window), nil
}

// ToggleDesk выставляет административный флаг доступности стола.
// Неизвестный id — ошибка (в отличие от остальных идемпотентных no-op
// операций: здесь молчаливый успех маскировал бы опечатку администратора).
func (s *Store) ToggleDesk(ctx context.Context, deskID int64, isAvailable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	desk, ok := s.deskIndex[deskID]
	if !ok {
		s.logger.Warn("ToggleDesk: desk id=%d not found", deskID)
		return ErrDeskNotFound
	}

	desk.IsAvailable = isAvailable
	s.logger.Info("ToggleDesk: desk id=%d isAvailable=%t", deskID, isAvailable)
	return nil
}

// UpdateRules выполняет частичное обновление правил: каждое переданное поле
// заменяет текущее значение целиком. После применения правила сохраняются в
// долговременное хранилище best-effort: ошибка записи логируется, но
// изменение в памяти уже зафиксировано и не откатывается.
func (s *Store) UpdateRules(ctx context.Context, upd domain.RulesUpdate) (domain.Rules, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateRulesUpdate(upd); err != nil {
		s.logger.Warn("UpdateRules: validation failed: %v", err)
		return domain.Rules{}, err
	}

	s.rules = upd.Apply(s.rules)
	s.logger.Info("UpdateRules: applied (maxPerDay=%d, blocks=%d, restrictedZones=%d)",
		s.rules.MaxBookingsPerUserPerDay, len(s.rules.AllowedTimeBlocks), len(s.rules.RestrictedZones))

	if s.repo != nil {
		persisted := s.rules.Clone()
		if err := s.repo.Save(ctx, &persisted); err != nil {
			s.logger.Error("UpdateRules: failed to persist rules: %v", err)
		}
	}

	return s.rules.Clone(), nil
}

// AddException добавляет персональное исключение из правила.
// Ключ должен быть из закрытого набора; пара (user, ruleKey) уникальна.
// Limit обязателен для maxBookingsPerUserPerDay и недопустим для остальных
// ключей (их исключения работают самим фактом присутствия).
func (s *Store) AddException(ctx context.Context, user string, key domain.RuleKey, limit *int) (*domain.Exception, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if !key.IsValid() {
		s.logger.Warn("AddException: unknown rule key %q", key)
		return nil, ErrUnknownRuleKey
	}
	if key == domain.RuleMaxBookingsPerUserPerDay {
		if limit == nil {
			return nil, fmt.Errorf("%w: limit is required for %s", ErrInvalidInput, key)
		}
		if *limit < 0 {
			return nil, fmt.Errorf("%w: limit must be non-negative", ErrInvalidInput)
		}
	} else if limit != nil {
		return nil, fmt.Errorf("%w: limit is not applicable to %s", ErrInvalidInput, key)
	}

	for _, e := range s.excs {
		if e.User == user && e.Key == key {
			s.logger.Warn("AddException: duplicate exception user=%s key=%s", user, key)
			return nil, ErrExceptionExists
		}
	}

	exc := &domain.Exception{
		ID:   s.nextExceptionID(),
		User: user,
		Key:  key,
	}
	if limit != nil {
		v := *limit
		exc.Limit = &v
	}
	s.excs = append(s.excs, exc)

	s.logger.Info("AddException: id=%d user=%s key=%s", exc.ID, user, key)
	result := *exc
	return &result, nil
}

// RemoveException удаляет исключение по id.
// Отсутствующий id — no-op с успехом.
func (s *Store) RemoveException(ctx context.Context, exceptionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.excs {
		if e.ID == exceptionID {
			s.excs = append(s.excs[:i], s.excs[i+1:]...)
			s.logger.Info("RemoveException: removed id=%d", exceptionID)
			return nil
		}
	}
	return nil
}

// Desks возвращает копию списка столов
func (s *Store) Desks() []*domain.Desk {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Desk, 0, len(s.desks))
	for _, d := range s.desks {
		copied := *d
		out = append(out, &copied)
	}
	return out
}

// Rooms возвращает копию списка комнат
func (s *Store) Rooms() []*domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		copied := *r
		out = append(out, &copied)
	}
	return out
}

// Bookings возвращает копию списка бронирований
func (s *Store) Bookings() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out
}

// Rules возвращает копию текущих правил
func (s *Store) Rules() domain.Rules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.Clone()
}

// Exceptions возвращает копию списка исключений
func (s *Store) Exceptions() []*domain.Exception {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Exception, 0, len(s.excs))
	for _, e := range s.excs {
		copied := *e
		if e.Limit != nil {
			v := *e.Limit
			copied.Limit = &v
		}
		out = append(out, &copied)
	}
	return out
}

// ResourceLabel возвращает подпись ресурса для отображения (и экспорта в календарь)
func (s *Store) ResourceLabel(resourceType domain.ResourceType, resourceID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resourceType {
	case domain.ResourceDesk:
		if d, ok := s.deskIndex[resourceID]; ok {
			return d.Label, nil
		}
		return "", ErrDeskNotFound
	case domain.ResourceRoom:
		if r, ok := s.roomIndex[resourceID]; ok {
			return r.Label, nil
		}
		return "", ErrRoomNotFound
	default:
		return "", ErrInvalidResourceType
	}
}

// GetBooking возвращает бронирование по id
func (s *Store) GetBooking(bookingID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == bookingID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBookingNotFound
}

// overlapsExisting проверяет пересечение окна с существующими бронированиями.
// Вызывается только под mutex.
func (s *Store) overlapsExisting(candidate *domain.Booking) bool {
	for _, b := range s.bookings {
		if b.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// nextBookingID выдает свежий монотонный id на основе текущего времени.
// Несколько бронирований в одну миллисекунду получают разные id.
func (s *Store) nextBookingID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastBookingID {
		id = s.lastBookingID + 1
	}
	s.lastBookingID = id
	return id
}

// nextExceptionID выдает свежий монотонный id для исключения
func (s *Store) nextExceptionID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastExceptionID {
		id = s.lastExceptionID + 1
	}
	s.lastExceptionID = id
	return id
}

// recordOp записывает исход операции в метрики (если метрики включены)
func (s *Store) recordOp(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordBookingOperation(operation, outcome)
	}
}

// validateBookRequest валидирует входные данные запроса на бронирование
func validateBookRequest(req *BookRequest) error {
	if req.User == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if len(req.User) > domain.MaxUserLength {
		return fmt.Errorf("%w: user is too long", ErrInvalidInput)
	}
	if !req.ResourceType.IsValid() {
		return ErrInvalidResourceType
	}
	if !domain.ValidDateISO(req.DateISO) {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.DateISO)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}

// validateRulesUpdate валидирует частичное обновление правил
func validateRulesUpdate(upd domain.RulesUpdate) error {
	if upd.MaxBookingsPerUserPerDay != nil && *upd.MaxBookingsPerUserPerDay < 0 {
		return fmt.Errorf("%w: maxBookingsPerUserPerDay must be non-negative", ErrInvalidInput)
	}
	if upd.AllowedTimeBlocks != nil {
		for _, block := range *upd.AllowedTimeBlocks {
			if err := block.Start.Validate(); err != nil {
				return fmt.Errorf("%w: invalid block start: %v", ErrInvalidInput, err)
			}
			if err := block.End.Validate(); err != nil {
				return fmt.Errorf("%w: invalid block end: %v", ErrInvalidInput, err)
			}
			if !block.Start.IsBefore(block.End) {
				return fmt.Errorf("%w: block start must be before end", ErrInvalidInput)
			}
		}
	}
	if upd.RestrictedZones != nil {
		for _, zone := range *upd.RestrictedZones {
			if domain.NormalizeZone(zone) == "" {
				return fmt.Errorf("%w: empty zone identifier", ErrInvalidInput)
			}
		}
	}
	return nil
}
