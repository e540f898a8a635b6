package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, int64(5*1024*1024), cfg.Sounds.MaxBytes)
	assert.Equal(t, 50, cfg.Ngrams.MaxResults)
	assert.False(t, cfg.MLService.Enabled)
	assert.Empty(t, cfg.Credentials.CheckSchedule)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "classroom_test")
	t.Setenv("MLSERVICE_TIMEOUT", "5s")
	t.Setenv("CREDENTIALS_CHECK_SCHEDULE", "0 3 * * *")
	t.Setenv("CREDENTIALS_CHECK_CONCURRENCY", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "classroom_test", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.MLService.Timeout)
	assert.Equal(t, "0 3 * * *", cfg.Credentials.CheckSchedule)
	assert.Equal(t, 1, cfg.Credentials.CheckConcurrency)
}

func TestLoad_InvalidSoundsLimit(t *testing.T) {
	t.Setenv("SOUNDS_MAX_BYTES", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", d.DSN())
}

func TestDatabaseConfig_DSN_ParsesWithPgx(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"empty password", ""},
		{"password with space", "p w"},
		{"password with symbols", "p@ss:w/rd?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DatabaseConfig{Host: "db", Port: 5433, User: "classroom", Password: tt.password, Name: "mlclassroom", SSLMode: "disable"}

			poolCfg, err := pgxpool.ParseConfig(d.DSN())
			require.NoError(t, err)

			assert.Equal(t, "mlclassroom", poolCfg.ConnConfig.Database)
			assert.Equal(t, tt.password, poolCfg.ConnConfig.Password)
			assert.Equal(t, "classroom", poolCfg.ConnConfig.User)
			assert.Equal(t, "db", poolCfg.ConnConfig.Host)
			assert.Equal(t, uint16(5433), poolCfg.ConnConfig.Port)
		})
	}
}
