package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090
read_timeout = 5

[logs]
level = "debug"
file = "logs/app.log"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-test"

[storage]
driver = "postgres"

[database]
host = "localhost"
port = 5433
user = "booking"
dbname = "booking"
sslmode = "disable"

[notification]
enabled = true
backoff_unit_ms = 250
from = "bookings@digitalpro.example"
api_url = "https://api.resend.com"

[ratelimit]
bookings_per_minute = 6
burst = 2

[cors]
allowed_origins = ["http://localhost:5173"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvDBPassword, "s3cret")
	t.Setenv(EnvMailAPIKey, "re_123")
	t.Setenv(EnvAdminJWTSecret, "jwt-secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "default kept")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "re_123", cfg.Notification.APIKey)
	assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 250*time.Millisecond, cfg.Notification.BackoffUnit())
	assert.Equal(t, 16500*time.Millisecond, cfg.Notification.DeliveryBudget())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "catalog.yaml", cfg.Catalog.SeedFile)
	assert.Contains(t, cfg.Database.DSN(), "port=5433")
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvAdminJWTSecret, "jwt-secret")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[server\nhttp_port = 1"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[storage]\ndriver = \"mongo\""))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[storage]\ndriver = \"postgres\""))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[notification]\nenabled = true"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv(EnvAdminJWTSecret, "")

	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080"))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_NotificationMustFitWriteTimeout(t *testing.T) {
	t.Setenv(EnvAdminJWTSecret, "jwt-secret")

	const base = `
[server]
write_timeout = 30

[notification]
enabled = true
backoff_unit_ms = 1000
from = "bookings@digitalpro.example"
api_url = "https://api.resend.com"
`

	tests := []struct {
		name    string
		extra   string
		wantErr bool
	}{
		{name: "hanging provider exceeds write timeout", extra: "timeout = 10", wantErr: true},
		{name: "budget fits with reserve", extra: "timeout = 7", wantErr: false},
		{name: "shipped defaults", extra: "", wantErr: false},
		{name: "zero timeout", extra: "timeout = 0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, base+tt.extra+"\n"))

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.LessOrEqual(t, cfg.Notification.DeliveryBudget()+ResponseReserve, 30*time.Second)
		})
	}
}
