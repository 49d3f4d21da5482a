package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is read, when present, before the environment is consulted.
// Variables already set in the environment win.
const EnvFile = "config/local.env"

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Logging  LoggingConfig
	Display  DisplayConfig

	// SeedDemoData loads the sample venues, artists and shows at startup.
	SeedDemoData bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Pool limits handed to database/sql.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration

	// ConnectTimeout bounds how long startup waits for Postgres to answer.
	ConnectTimeout time.Duration
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigin string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DisplayConfig controls how times are shown to users.
type DisplayConfig struct {
	TimeZone string
	Location *time.Location
}

// Load reads configuration from EnvFile and environment variables
func Load() (*Config, error) {
	_ = godotenv.Load(EnvFile)
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{}
	var problems []string

	if err := cfg.loadDatabase(); err != nil {
		problems = append(problems, err.Error())
	}
	problems = append(problems, cfg.loadPool()...)
	if err := cfg.loadServer(); err != nil {
		problems = append(problems, err.Error())
	}
	if err := cfg.loadDisplay(); err != nil {
		problems = append(problems, err.Error())
	}
	cfg.CORS.AllowedOrigin = strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGIN"))
	cfg.Logging.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	cfg.Logging.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	cfg.SeedDemoData, _ = strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))

	problems = append(problems, cfg.problems()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return cfg, nil
}

func (c *Config) loadDatabase() error {
	// DATABASE_URL wins over the individual parameters
	c.Database.URL = os.Getenv("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = getEnvOrDefault("DB_HOST", "localhost")
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = os.Getenv("DB_NAME")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	c.Database.Port = port

	if c.Database.User != "" && c.Database.Name != "" {
		c.Database.URL = fmt.Sprintf(
			"postgresql://%s:%s@%s/%s?sslmode=%s",
			c.Database.User,
			c.Database.Password,
			net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
			c.Database.Name,
			c.Database.SSLMode,
		)
	}
	return nil
}

func (c *Config) loadPool() []string {
	var problems []string

	intSetting := func(key, def string, dst *int) {
		v, err := strconv.Atoi(getEnvOrDefault(key, def))
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s: %v", key, err))
			return
		}
		*dst = v
	}
	durationSetting := func(key, def string, dst *time.Duration) {
		v, err := time.ParseDuration(getEnvOrDefault(key, def))
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s: %v", key, err))
			return
		}
		*dst = v
	}

	intSetting("DB_MAX_OPEN_CONNS", "20", &c.Database.MaxOpenConns)
	intSetting("DB_MAX_IDLE_CONNS", "5", &c.Database.MaxIdleConns)
	durationSetting("DB_CONN_MAX_IDLE_TIME", "5m", &c.Database.ConnMaxIdleTime)
	durationSetting("DB_CONNECT_TIMEOUT", "30s", &c.Database.ConnectTimeout)

	return problems
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "5000"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadDisplay() error {
	c.Display.TimeZone = getEnvOrDefault("DISPLAY_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(c.Display.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	c.Display.Location = loc
	return nil
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	if problems := c.problems(); len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func (c *Config) problems() []string {
	var problems []string

	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is required (or DB_USER and DB_NAME)")
	}

	if c.Database.MaxOpenConns < 1 {
		problems = append(problems, "DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		problems = append(problems, "DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	if c.Database.ConnMaxIdleTime < 0 {
		problems = append(problems, "DB_CONN_MAX_IDLE_TIME must not be negative")
	}
	if c.Database.ConnectTimeout <= 0 {
		problems = append(problems, "DB_CONNECT_TIMEOUT must be positive")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		problems = append(problems, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		problems = append(problems, "LOG_FORMAT must be one of: json, text")
	}

	return problems
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
