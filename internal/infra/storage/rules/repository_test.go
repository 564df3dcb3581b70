package rules

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexispot/booking-service/internal/domain"
	"github.com/flexispot/booking-service/pkg/types"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "rules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepository_LoadBeforeSave(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRulesNotFound)
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	rules := &domain.Rules{
		MaxBookingsPerUserPerDay: 3,
		AllowedTimeBlocks: []types.TimeBlock{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "19:00"},
		},
		RestrictedZones: []string{"B"},
	}
	require.NoError(t, repo.Save(ctx, rules))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := domain.DefaultRules()
	require.NoError(t, repo.Save(ctx, &first))

	second := domain.DefaultRules()
	second.MaxBookingsPerUserPerDay = 10
	require.NoError(t, repo.Save(ctx, &second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.MaxBookingsPerUserPerDay)
}

func TestRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.db")
	ctx := context.Background()

	repo, err := Open(path)
	require.NoError(t, err)
	saved := domain.DefaultRules()
	saved.RestrictedZones = []string{"A", "C"}
	require.NoError(t, repo.Save(ctx, &saved))
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &saved, loaded)
}
