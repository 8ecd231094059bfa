package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"favorites": map[string]any{
			"sqlitePath": "preferences.db",
			"redis": map[string]any{
				"addr": "",
			},
		},
		"firebase": map[string]any{
			"apiKey":    "",
			"projectId": "",
		},
		"media": map[string]any{
			"maxEncodedLength": 900000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FAVORITES_SQLITEPATH", want: "favorites.sqlitePath"},
		{envKey: "FAVORITES_REDIS_ADDR", want: "favorites.redis.addr"},
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "MEDIA_MAXENCODEDLENGTH", want: "media.maxEncodedLength"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, DriverFirestore, cfg.Store.Driver)
	assert.Equal(t, DriverFirebase, cfg.Identity.Driver)
	assert.Equal(t, DriverSQLite, cfg.Favorites.Driver)
	assert.Equal(t, "favorites", cfg.Favorites.Key)
	assert.Equal(t, 800, cfg.Media.MaxEdge)
	assert.Equal(t, 70, cfg.Media.Quality)
	assert.Equal(t, 900_000, cfg.Media.MaxEncodedLength)
	assert.Equal(t, DefaultMaxPixels, cfg.Media.MaxPixels)
	assert.Equal(t, 10, cfg.Adoption.MinMessageLength)
	assert.Equal(t, "none", cfg.Notification.Provider)
	assert.Equal(t, "animaladoption", cfg.QRCode.DeepLinkScheme)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: refuge
  log:
    level: info
store:
  driver: firestore
favorites:
  driver: sqlite
  sqlitePath: prefs.db
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("FAVORITES_SQLITEPATH", "/tmp/other.db")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "refuge", cfg.Env.ServiceName)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "/tmp/other.db", cfg.Favorites.SQLitePath)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
