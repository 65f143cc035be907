package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DBDriver      string
	DBDSN         string
	ServerPort    string
	SessionSecret string
	SessionMaxAge int

	// PublicBaseURL is embedded into every QR code, so it has to be reachable from a phone.
	PublicBaseURL string
	StaticDir     string
	QRSize        int

	LogLevel string
	GinMode  string

	LoginRatePerMinute int

	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      strings.ToLower(os.Getenv("DB_DRIVER")),
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		GinMode:       os.Getenv("GIN_MODE"),
		AdminUsername: strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	var err error
	if cfg.SessionMaxAge, err = intEnv("SESSION_MAX_AGE_SEC", 86400); err != nil {
		return nil, err
	}
	if cfg.QRSize, err = intEnv("QR_SIZE", 256); err != nil {
		return nil, err
	}
	if cfg.LoginRatePerMinute, err = intEnv("LOGIN_RATE_PER_MINUTE", 10); err != nil {
		return nil, err
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
	}
	if cfg.DBDSN == "" && cfg.DBDriver == DriverSQLite {
		cfg.DBDSN = "violations.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.ServerPort
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields Load cannot default.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported (use %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	if c.DBDSN == "" {
		return errors.New("DB_DSN is not set")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if len(c.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 bytes")
	}

	u, err := url.Parse(c.PublicBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PUBLIC_BASE_URL %q must be an absolute http(s) URL", c.PublicBaseURL)
	}

	if c.QRSize < 64 {
		return errors.New("QR_SIZE must be at least 64")
	}
	if c.LoginRatePerMinute <= 0 {
		return errors.New("LOGIN_RATE_PER_MINUTE must be positive")
	}
	if c.SessionMaxAge <= 0 {
		return errors.New("SESSION_MAX_AGE_SEC must be positive")
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
