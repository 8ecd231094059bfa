package kvstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"refuge/config"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func assertRoundTrip(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reports absent, not an error")

	require.NoError(t, store.Set(ctx, "favorites", `["a1"]`))
	require.NoError(t, store.Set(ctx, "favorites", `["a1","b2"]`))

	value, ok, err := store.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a1","b2"]`, value)

	require.NoError(t, store.Set(ctx, "favorites", ""))
	value, ok, err = store.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, ok, "an empty value is still a value")
	assert.Empty(t, value)
}

func TestMemory_RoundTrip(t *testing.T) {
	assertRoundTrip(t, NewMemory())
}

func TestSQLite_RoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "preferences.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assertRoundTrip(t, store)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "favorites", `["x9"]`))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err, "migrations are idempotent")
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["x9"]`, value)
}

func TestSQLite_ClosedDatabaseIsBackingServiceError(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "preferences.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(context.Background(), "favorites")
	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))

	var backing *domainerrors.BackingServiceError
	require.ErrorAs(t, err, &backing)
	assert.Equal(t, "sqlite", backing.Service())
}

func TestRedis_UnreachableIsBackingServiceError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	store := NewRedisWithClient(client, "refuge:")
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, "refuge:favorites", store.key("favorites"))

	_, _, err := store.Get(context.Background(), "favorites")
	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))

	err = store.Set(context.Background(), "favorites", "[]")
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
}

func TestNew_SelectsDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.FavoritesConfig
		want    any
		wantErr bool
	}{
		{name: "memory", cfg: &config.FavoritesConfig{Driver: config.DriverMemory}, want: &Memory{}},
		{name: "sqlite", cfg: &config.FavoritesConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "preferences.db"),
		}, want: &SQLite{}},
		{name: "unknown", cfg: &config.FavoritesConfig{Driver: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			store, err := New(Params{
				Lifecycle: lc,
				Config:    &config.Config{Favorites: tt.cfg},
				Logger:    logger,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)

			lc.RequireStart()
			assertRoundTrip(t, store)
			lc.RequireStop()
		})
	}
}
