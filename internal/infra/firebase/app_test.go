package firebase

import (
	"io"
	"log/slog"
	"testing"

	"refuge/config"

	"github.com/stretchr/testify/assert"
)

func TestNewApp_Options(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := NewApp(&config.Config{}, logger)
	assert.Empty(t, app.ClientOptions(), "no credentials file means default credentials")
	assert.Empty(t, app.ProjectID())

	app = NewApp(&config.Config{Firebase: &config.FirebaseConfig{
		ProjectID:       "animal-adoption",
		CredentialsPath: "/etc/refuge/sa.json",
		APIKey:          "key",
	}}, logger)
	assert.Len(t, app.ClientOptions(), 1)
	assert.Equal(t, "animal-adoption", app.ProjectID())
	assert.Equal(t, "key", app.APIKey())
}
