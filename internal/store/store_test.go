package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexispot/booking-service/internal/domain"
	rulesRepo "github.com/flexispot/booking-service/internal/infra/storage/rules"
	"github.com/flexispot/booking-service/internal/rules"
	"github.com/flexispot/booking-service/pkg/ptr"
	"github.com/flexispot/booking-service/pkg/types"
)

// ────────────────────────────────────────────────
// Test doubles
// ────────────────────────────────────────────────

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockRulesRepo struct {
	mu       sync.Mutex
	loadFunc func(ctx context.Context) (*domain.Rules, error)
	saved    []*domain.Rules
	saveErr  error
}

func (m *mockRulesRepo) Load(ctx context.Context) (*domain.Rules, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return nil, rulesRepo.ErrRulesNotFound
}

func (m *mockRulesRepo) Save(ctx context.Context, r *domain.Rules) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := r.Clone()
	m.saved = append(m.saved, &copied)
	return nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), DefaultSeed(), nil, nil, nopLogger{})
}

func bookReq(user string, rt domain.ResourceType, id int64, date string, start, end types.TimeString) *BookRequest {
	return &BookRequest{
		User:         user,
		ResourceType: rt,
		ResourceID:   id,
		DateISO:      date,
		StartTime:    start,
		EndTime:      end,
	}
}

// ────────────────────────────────────────────────
// Book
// ────────────────────────────────────────────────

func TestBook_Success(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booking, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, "alice", booking.User)
	assert.Equal(t, domain.ResourceDesk, booking.ResourceType)

	all := s.Bookings()
	require.Len(t, all, 1)
	assert.Equal(t, booking.ID, all[0].ID)
}

func TestBook_OverlapRejectedTouchingAccepted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	// пересечение 10:30-11:30 отклоняется
	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 7, "2025-09-02", "10:30", "11:30"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceBooked)
	assert.Equal(t, "Resource is already booked for requested time", err.Error())

	// касание 11:00-12:00 проходит (полуоткрытые интервалы)
	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 7, "2025-09-02", "11:00", "12:00"))
	require.NoError(t, err)

	// то же окно на другом столе проходит
	_, err = s.Book(ctx, bookReq("carol", domain.ResourceDesk, 8, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	// то же окно в другой день проходит
	_, err = s.Book(ctx, bookReq("dave", domain.ResourceDesk, 7, "2025-09-03", "10:00", "11:00"))
	require.NoError(t, err)
}

func TestBook_DisabledRoomStillBookable(t *testing.T) {
	// комната id=3 в DefaultSeed выключена администратором (isAvailable=false);
	// глобальный флаг — подсказка для UI и бронирование не блокирует
	s := newTestStore(t)

	rooms := s.Rooms()
	var room3 *domain.Room
	for _, r := range rooms {
		if r.ID == 3 {
			room3 = r
		}
	}
	require.NotNil(t, room3)
	require.False(t, room3.IsAvailable)

	booking, err := s.Book(context.Background(), bookReq("alice", domain.ResourceRoom, 3, "2025-09-02", "09:00", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), booking.ResourceID)
}

func TestBook_ResourceNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 999, "2025-09-02", "10:00", "11:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeskNotFound)
	assert.Equal(t, "Desk not found", err.Error())

	_, err = s.Book(ctx, bookReq("alice", domain.ResourceRoom, 999, "2025-09-02", "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// id стола не существует в пространстве комнат
	_, err = s.Book(ctx, bookReq("alice", domain.ResourceRoom, 12, "2025-09-02", "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = s.Book(ctx, bookReq("alice", "vehicle", 1, "2025-09-02", "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrInvalidResourceType)
}

func TestBook_InputValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *BookRequest
	}{
		{name: "empty user", req: bookReq("", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00")},
		{name: "bad date", req: bookReq("alice", domain.ResourceDesk, 7, "02.09.2025", "10:00", "11:00")},
		{name: "malformed start", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10am", "11:00")},
		{name: "malformed end", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "1100")},
		{name: "garbage after one-digit minute", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:3Z")},
		{name: "leading space in start", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", " 9:30", "11:00")},
		{name: "start equals end", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "10:00")},
		{name: "start after end", req: bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "11:00", "10:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Book(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// отказ не оставляет следов
	assert.Empty(t, s.Bookings())
}

func TestBook_RuleRejectionPropagatedVerbatim(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateRules(ctx, domain.RulesUpdate{
		MaxBookingsPerUserPerDay: ptr.Ptr(1),
		AllowedTimeBlocks:        &[]types.TimeBlock{{Start: "09:00", End: "17:00"}},
	})
	require.NoError(t, err)

	_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	// второй заход alice в тот же день — отказ по лимиту, время не важно
	_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, 8, "2025-09-02", "14:00", "15:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrQuotaExceeded)
	assert.Equal(t, "maxBookingsPerUserPerDay exceeded", err.Error())

	// частичное попадание в блок — отказ (нужно полное вхождение)
	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 7, "2025-09-02", "08:00", "09:30"))
	require.Error(t, err)
	assert.Equal(t, "Requested time outside allowed time blocks", err.Error())
}

func TestBook_RestrictedZoneEnforcedOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateRules(ctx, domain.RulesUpdate{RestrictedZones: &[]string{"B"}})
	require.NoError(t, err)

	_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrRestrictedZone)
	assert.Equal(t, "Desk in restricted zone B", err.Error())

	// зона действует только на столы: комнаты бронируются как прежде
	_, err = s.Book(ctx, bookReq("alice", domain.ResourceRoom, 1, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	// исключение restrictedZones открывает зону для пользователя
	_, err = s.AddException(ctx, "alice", domain.RuleRestrictedZones, nil)
	require.NoError(t, err)
	_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-03", "10:00", "11:00"))
	require.NoError(t, err)
}

func TestBook_QuotaExceptionThroughStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateRules(ctx, domain.RulesUpdate{MaxBookingsPerUserPerDay: ptr.Ptr(1)})
	require.NoError(t, err)

	_, err = s.AddException(ctx, "alice", domain.RuleMaxBookingsPerUserPerDay, ptr.Ptr(3))
	require.NoError(t, err)

	// alice бронирует ровно 3 раза
	for i, desk := range []int64{1, 2, 4} {
		_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, desk, "2025-09-02", "10:00", "11:00"))
		require.NoError(t, err, "booking %d within exception limit", i+1)
	}
	_, err = s.Book(ctx, bookReq("alice", domain.ResourceDesk, 5, "2025-09-02", "10:00", "11:00"))
	assert.ErrorIs(t, err, rules.ErrQuotaExceeded)

	// bob ограничен глобальным лимитом 1
	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 5, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)
	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 7, "2025-09-02", "12:00", "13:00"))
	assert.ErrorIs(t, err, rules.ErrQuotaExceeded)
}

// Гонка двух конкурентных бронирований одного окна: пересечение должно
// отловиться даже при одновременном входе (критическая секция store)
func TestBook_ConcurrentSameWindowSingleWinner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		user := string(rune('a' + i))
		go func(user string) {
			defer wg.Done()
			_, err := s.Book(ctx, bookReq(user, domain.ResourceRoom, 2, "2025-09-02", "10:00", "11:00"))
			results <- err
		}(user)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrResourceBooked)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, s.Bookings(), 1)
}

// Инвариант: после серии операций бронирования одного ресурса попарно не пересекаются
func TestBookings_NoOverlapInvariant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	windows := []struct{ start, end types.TimeString }{
		{"09:00", "10:00"}, {"09:30", "10:30"}, {"10:00", "11:00"},
		{"10:15", "10:45"}, {"11:00", "12:00"}, {"11:30", "12:30"},
	}
	users := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	for i, w := range windows {
		_, _ = s.Book(ctx, bookReq(users[i], domain.ResourceDesk, 9, "2025-09-02", w.start, w.end))
	}

	all := s.Bookings()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Overlaps(all[j]),
				"bookings %d and %d overlap: %v / %v", i, j, all[i], all[j])
		}
	}
}

// ────────────────────────────────────────────────
// Cancel
// ────────────────────────────────────────────────

func TestCancel_Idempotence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booking, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	require.NoError(t, s.Cancel(ctx, booking.ID))
	assert.Empty(t, s.Bookings())

	// повторная отмена — чистый отказ, коллекция не меняется
	err = s.Cancel(ctx, booking.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, "Booking not found", err.Error())
	assert.Empty(t, s.Bookings())
}

func TestCancel_FreesWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booking, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)
	require.NoError(t, s.Cancel(ctx, booking.ID))

	_, err = s.Book(ctx, bookReq("bob", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)
}

// ────────────────────────────────────────────────
// Availability query
// ────────────────────────────────────────────────

func TestIsResourceAvailableAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Book(ctx, bookReq("alice", domain.ResourceDesk, 7, "2025-09-02", "10:00", "11:00"))
	require.NoError(t, err)

	available, err := s.IsResourceAvailableAt(domain.ResourceDesk, 7, "2025-09-02", "10:30", "11:30")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = s.IsResourceAvailableAt(domain.ResourceDesk, 7, "2025-09-02", "11:00", "12:00")
	require.NoError(t, err)
	assert.True(t, available)

	// глобальный флаг не учитывается: выключенный стол без бронирований свободен
	available, err = s.IsResourceAvailableAt(domain.ResourceDesk, 3, "2025-09-02", "10:00", "11:00")
	require.NoError(t, err)
	assert.True(t, available)

	// малформатный ввод — ошибка, а не «свободно»
	_, err = s.IsResourceAvailableAt(domain.ResourceDesk, 7, "2025-09-02", "garbage", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.IsResourceAvailableAt(domain.ResourceDesk, 7, "not-a-date", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.IsResourceAvailableAt("vehicle", 7, "2025-09-02", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidResourceType)
}

// ────────────────────────────────────────────────
// ToggleDesk
// ────────────────────────────────────────────────

func TestToggleDesk(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleDesk(ctx, 7, false))
	for _, d := range s.Desks() {
		if d.ID == 7 {
			assert.False(t, d.IsAvailable)
		}
	}

	// идемпотентность по значению
	require.NoError(t, s.ToggleDesk(ctx, 7, false))

	// неизвестный id — ошибка, не молчаливый no-op
	err := s.ToggleDesk(ctx, 999, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeskNotFound)
}

// ────────────────────────────────────────────────
// Rules
// ────────────────────────────────────────────────

func TestUpdateRules_PartialMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	initial := s.Rules()
	require.Equal(t, domain.DefaultMaxBookingsPerUserPerDay, initial.MaxBookingsPerUserPerDay)

	updated, err := s.UpdateRules(ctx, domain.RulesUpdate{MaxBookingsPerUserPerDay: ptr.Ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.MaxBookingsPerUserPerDay)
	// непереданные поля не изменились
	assert.Equal(t, initial.AllowedTimeBlocks, updated.AllowedTimeBlocks)
	assert.Equal(t, initial.RestrictedZones, updated.RestrictedZones)

	// переданный список заменяется целиком, не поэлементно
	blocks := []types.TimeBlock{{Start: "08:00", End: "12:00"}, {Start: "13:00", End: "20:00"}}
	updated, err = s.UpdateRules(ctx, domain.RulesUpdate{AllowedTimeBlocks: &blocks})
	require.NoError(t, err)
	assert.Equal(t, blocks, updated.AllowedTimeBlocks)
	assert.Equal(t, 5, updated.MaxBookingsPerUserPerDay)
}

func TestUpdateRules_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateRules(ctx, domain.RulesUpdate{MaxBookingsPerUserPerDay: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := []types.TimeBlock{{Start: "17:00", End: "09:00"}}
	_, err = s.UpdateRules(ctx, domain.RulesUpdate{AllowedTimeBlocks: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	zones := []string{"   "}
	_, err = s.UpdateRules(ctx, domain.RulesUpdate{RestrictedZones: &zones})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateRules_Persistence(t *testing.T) {
	repo := &mockRulesRepo{}
	s := New(context.Background(), DefaultSeed(), repo, nil, nopLogger{})
	ctx := context.Background()

	_, err := s.UpdateRules(ctx, domain.RulesUpdate{MaxBookingsPerUserPerDay: ptr.Ptr(4)})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, 4, repo.saved[0].MaxBookingsPerUserPerDay)
}

func TestUpdateRules_PersistenceFailureDoesNotRollBack(t *testing.T) {
	repo := &mockRulesRepo{saveErr: errors.New("disk full")}
	s := New(context.Background(), DefaultSeed(), repo, nil, nopLogger{})

	updated, err := s.UpdateRules(context.Background(), domain.RulesUpdate{MaxBookingsPerUserPerDay: ptr.Ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.MaxBookingsPerUserPerDay)
	assert.Equal(t, 7, s.Rules().MaxBookingsPerUserPerDay)
}

func TestNew_LoadsPersistedRules(t *testing.T) {
	persisted := domain.Rules{
		MaxBookingsPerUserPerDay: 9,
		AllowedTimeBlocks:        []types.TimeBlock{{Start: "07:00", End: "22:00"}},
		RestrictedZones:          []string{"C"},
	}
	repo := &mockRulesRepo{
		loadFunc: func(ctx context.Context) (*domain.Rules, error) {
			r := persisted.Clone()
			return &r, nil
		},
	}

	s := New(context.Background(), DefaultSeed(), repo, nil, nopLogger{})
	assert.Equal(t, persisted, s.Rules())
}

// ────────────────────────────────────────────────
// Exceptions
// ────────────────────────────────────────────────

func TestAddException(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exc, err := s.AddException(ctx, "alice", domain.RuleMaxBookingsPerUserPerDay, ptr.Ptr(3))
	require.NoError(t, err)
	assert.NotZero(t, exc.ID)
	require.NotNil(t, exc.Limit)
	assert.Equal(t, 3, *exc.Limit)

	// дубликат пары (user, key) отклоняется
	_, err = s.AddException(ctx, "alice", domain.RuleMaxBookingsPerUserPerDay, ptr.Ptr(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExceptionExists)

	// другой ключ для того же пользователя проходит
	_, err = s.AddException(ctx, "alice", domain.RuleAllowedTimeBlocks, nil)
	require.NoError(t, err)

	assert.Len(t, s.Exceptions(), 2)
}

func TestAddException_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddException(ctx, "alice", "freeCoffee", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRuleKey)

	_, err = s.AddException(ctx, "", domain.RuleAllowedTimeBlocks, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// лимит обязателен для квоты
	_, err = s.AddException(ctx, "alice", domain.RuleMaxBookingsPerUserPerDay, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// и не имеет смысла для остальных ключей
	_, err = s.AddException(ctx, "alice", domain.RuleRestrictedZones, ptr.Ptr(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveException(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	exc, err := s.AddException(ctx, "alice", domain.RuleAllowedTimeBlocks, nil)
	require.NoError(t, err)

	require.NoError(t, s.RemoveException(ctx, exc.ID))
	assert.Empty(t, s.Exceptions())

	// отсутствующий id — no-op с успехом
	require.NoError(t, s.RemoveException(ctx, exc.ID))
}

// ────────────────────────────────────────────────
// Read accessors
// ────────────────────────────────────────────────

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t)

	desks := s.Desks()
	require.NotEmpty(t, desks)
	desks[0].IsAvailable = !desks[0].IsAvailable
	fresh := s.Desks()
	assert.NotEqual(t, desks[0].IsAvailable, fresh[0].IsAvailable,
		"mutating the returned slice must not affect store state")

	r := s.Rules()
	r.MaxBookingsPerUserPerDay = 99
	assert.NotEqual(t, 99, s.Rules().MaxBookingsPerUserPerDay)
}

func TestBookingIDsMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	users := []string{"alice", "bob", "carol", "dave", "erin"}
	var prev int64
	for i, user := range users {
		b, err := s.Book(ctx, bookReq(user, domain.ResourceDesk, int64(i+1), "2025-09-02", "10:00", "11:00"))
		require.NoError(t, err)
		assert.Greater(t, b.ID, prev)
		prev = b.ID
	}
}
