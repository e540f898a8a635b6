package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Logger      LoggerConfig
	Sounds      SoundsConfig
	Ngrams      NgramsConfig
	Scratch     ScratchConfig
	Emoticons   EmoticonsConfig
	MLService   MLServiceConfig
	Credentials CredentialsConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns a postgres:// URL understood by pgx. Credentials and the
// database name are escaped, so empty values and spaces survive parsing.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}
	return u.String()
}

type LoggerConfig struct {
	Level  string
	Format string
}

type SoundsConfig struct {
	Dir      string
	MaxBytes int64
}

type NgramsConfig struct {
	MaxResults int
}

type ScratchConfig struct {
	// PublicURL is the base URL Scratch uses to call back into the API.
	PublicURL string
}

type EmoticonsConfig struct {
	// File overrides the embedded emoticon library when set.
	File string
}

type MLServiceConfig struct {
	Enabled bool
	Timeout time.Duration
}

type CredentialsConfig struct {
	CheckSchedule    string
	CheckConcurrency int
	CheckRate        float64
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "mlclassroom")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("SOUNDS_DIR", "./data/sounds")
	v.SetDefault("SOUNDS_MAX_BYTES", 5*1024*1024)
	v.SetDefault("NGRAMS_MAX_RESULTS", 50)
	v.SetDefault("SCRATCH_PUBLIC_URL", "http://localhost:8080")
	v.SetDefault("EMOTICONS_FILE", "")
	v.SetDefault("MLSERVICE_ENABLED", false)
	v.SetDefault("MLSERVICE_TIMEOUT", "30s")
	v.SetDefault("CREDENTIALS_CHECK_SCHEDULE", "")
	v.SetDefault("CREDENTIALS_CHECK_CONCURRENCY", 4)
	v.SetDefault("CREDENTIALS_CHECK_RATE", 2.0)

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}
	mlTimeout, err := time.ParseDuration(v.GetString("MLSERVICE_TIMEOUT"))
	if err != nil {
		mlTimeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Sounds: SoundsConfig{
			Dir:      v.GetString("SOUNDS_DIR"),
			MaxBytes: v.GetInt64("SOUNDS_MAX_BYTES"),
		},
		Ngrams: NgramsConfig{
			MaxResults: v.GetInt("NGRAMS_MAX_RESULTS"),
		},
		Scratch: ScratchConfig{
			PublicURL: v.GetString("SCRATCH_PUBLIC_URL"),
		},
		Emoticons: EmoticonsConfig{
			File: v.GetString("EMOTICONS_FILE"),
		},
		MLService: MLServiceConfig{
			Enabled: v.GetBool("MLSERVICE_ENABLED"),
			Timeout: mlTimeout,
		},
		Credentials: CredentialsConfig{
			CheckSchedule:    v.GetString("CREDENTIALS_CHECK_SCHEDULE"),
			CheckConcurrency: v.GetInt("CREDENTIALS_CHECK_CONCURRENCY"),
			CheckRate:        v.GetFloat64("CREDENTIALS_CHECK_RATE"),
		},
	}

	if cfg.Sounds.MaxBytes <= 0 {
		return nil, fmt.Errorf("SOUNDS_MAX_BYTES must be positive, got %d", cfg.Sounds.MaxBytes)
	}
	if cfg.Credentials.CheckConcurrency <= 0 {
		cfg.Credentials.CheckConcurrency = 1
	}

	return cfg, nil
}
