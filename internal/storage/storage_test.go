package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/internal/config"
	"hallbook/internal/models"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	sqlite, err := NewSQLiteBackend(context.Background(), filepath.Join(t.TempDir(), "db", "hallbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	out := map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   NewFileBackend(filepath.Join(t.TempDir(), "data")),
		"sqlite": sqlite,
	}

	if addr := os.Getenv("HALLBOOK_TEST_REDIS_ADDR"); addr != "" {
		rb, err := NewRedisBackend(context.Background(), &redis.Options{Addr: addr}, "hallbook-test-"+t.Name())
		require.NoError(t, err)
		t.Cleanup(func() { rb.Close() })
		out["redis"] = rb
	}
	return out
}

func TestStore_GuestListScenario(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(b, zerolog.Nop())

			got := Load(ctx, s, SlotGuestList, []models.Guest{})
			assert.Empty(t, got)
			assert.NotNil(t, got)

			g1 := models.Guest{ID: "g1", Name: "Rajesh Uncle", Relation: "Uncle", Invited: true, Category: "Family"}
			require.NoError(t, Save(ctx, s, SlotGuestList, []models.Guest{g1}))

			got = Load(ctx, s, SlotGuestList, []models.Guest{})
			assert.Equal(t, []models.Guest{g1}, got)
		})
	}
}

func TestStore_RoundTripBudget(t *testing.T) {
	ctx := context.Background()
	plan := models.BudgetPlan{
		TotalBudget: 800000,
		Categories: []models.BudgetCategory{
			{Name: "Venue", Budgeted: 60000, Spent: 70000, Color: "#800000"},
		},
	}

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(b, zerolog.Nop())
			require.NoError(t, Save(ctx, s, SlotWeddingBudget, plan))

			got := Load(ctx, s, SlotWeddingBudget, models.BudgetPlan{})
			assert.Equal(t, plan, got)
		})
	}
}

func TestStore_CorruptSlotFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	def := []models.TimelineEvent{{ID: "t1", Status: models.TimelinePending}}

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(b, zerolog.Nop())
			require.NoError(t, b.Set(ctx, string(SlotWeddingTimeline), []byte("{not json")))

			got := Load(ctx, s, SlotWeddingTimeline, def)
			assert.Equal(t, def, got)
		})
	}
}

func TestStore_NullAndEmptyFallBackToDefault(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := NewStore(b, zerolog.Nop())
	def := models.UserProfile{ID: "user1"}

	require.NoError(t, b.Set(ctx, string(SlotCurrentUser), []byte("null")))
	assert.Equal(t, def, Load(ctx, s, SlotCurrentUser, def))

	require.NoError(t, b.Set(ctx, string(SlotCurrentUser), []byte("  ")))
	assert.Equal(t, def, Load(ctx, s, SlotCurrentUser, def))
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryBackend(), zerolog.Nop())

	require.NoError(t, Save(ctx, s, SlotGuestList, []models.Guest{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, Save(ctx, s, SlotGuestList, []models.Guest{{ID: "c"}}))

	got := Load(ctx, s, SlotGuestList, []models.Guest{})
	assert.Equal(t, []models.Guest{{ID: "c"}}, got)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := NewStore(b, zerolog.Nop())

	doc, changed, err := Update(ctx, s, SlotGuestList, []models.Guest{}, func(gs []models.Guest) ([]models.Guest, bool) {
		return gs, false
	})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, doc)
	_, exists, _ := b.Get(ctx, string(SlotGuestList))
	assert.False(t, exists, "no-op update must not write")

	doc, changed, err = Update(ctx, s, SlotGuestList, []models.Guest{}, func(gs []models.Guest) ([]models.Guest, bool) {
		return append(gs, models.Guest{ID: "g9"}), true
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, doc, 1)
	assert.Len(t, Load(ctx, s, SlotGuestList, []models.Guest{}), 1)
}

func TestFileBackend_WritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(NewFileBackend(dir), zerolog.Nop())

	require.NoError(t, Save(context.Background(), s, SlotCurrentUser, models.UserProfile{ID: "user1", Name: "Priya"}))

	data, err := os.ReadFile(filepath.Join(dir, "currentUser.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"id\": \"user1\"")
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBackend(ctx, config.StoreConfig{Backend: "memory"}, dir)
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = OpenBackend(ctx, config.StoreConfig{Backend: "file"}, dir)
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	b, err = OpenBackend(ctx, config.StoreConfig{Backend: "sqlite", SQLitePath: filepath.Join(dir, "x.db")}, dir)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)
	b.Close()

	_, err = OpenBackend(ctx, config.StoreConfig{Backend: "cassandra"}, dir)
	assert.Error(t, err)
}
