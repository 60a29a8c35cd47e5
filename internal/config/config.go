package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const defaultDatabaseURL = "postgres://localhost:5432/clubhouse?sslmode=disable"

type Config struct {
	Port           string
	DatabaseURL    string
	MigrationsPath string
	DBTimeout      time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	AdminName     string
	AdminEmail    string
	AdminPassword string

	CORSOrigins []string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	DiscordToken     string
	DiscordChannelID string

	ClubTimezone  string
	DefaultLocale string

	LogLevel  string
	LogFormat string
}

// Load reads the environment (and an optional .env) and validates the shared settings.
// Each process then calls ValidateAPI or ValidateBot.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   getenv("MIGRATIONS_PATH", "migrations"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminName:        os.Getenv("ADMIN_NAME"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:      splitCSV(getenv("CORS_ORIGINS", "*")),
		AMQPURL:          os.Getenv("AMQP_URL"),
		AMQPExchange:     getenv("AMQP_EXCHANGE", "club.registrations"),
		AMQPQueue:        getenv("AMQP_QUEUE", "club.registrations.discord"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		ClubTimezone:     getenv("CLUB_TIMEZONE", "Asia/Kolkata"),
		DefaultLocale:    getenv("DEFAULT_LOCALE", "en"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.JWTTTL, err = durationEnv("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.DBTimeout, err = durationEnv("DB_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the settings shared by every process.
func (c *Config) validate() error {
	if c.JWTTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("config: DB_TIMEOUT must be positive")
	}
	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			return fmt.Errorf("config: AMQP_URL must be an amqp:// or amqps:// URL")
		}
	}
	if _, err := time.LoadLocation(c.ClubTimezone); err != nil {
		return fmt.Errorf("config: unknown CLUB_TIMEZONE %q: %w", c.ClubTimezone, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// ValidateAPI checks the settings the HTTP API needs.
func (c *Config) ValidateAPI() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("config: PORT must be a TCP port, got %q", c.Port)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("config: JWT_SECRET is required and must be at least 16 characters")
	}

	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return fmt.Errorf("config: ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	if c.AdminPassword != "" && len(c.AdminPassword) < 8 {
		return fmt.Errorf("config: ADMIN_PASSWORD must be at least 8 characters")
	}
	return nil
}

// ValidateBot checks the settings only the Discord notifier needs.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}
	if strings.TrimSpace(c.DiscordChannelID) == "" {
		return fmt.Errorf("config: DISCORD_CHANNEL_ID is required")
	}
	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel id (digits only)")
		}
	}
	if c.AMQPURL == "" {
		return fmt.Errorf("config: AMQP_URL is required by the notifier")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
