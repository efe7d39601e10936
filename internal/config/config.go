package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	JWT         JWTConfig
	Store       StoreConfig
	Attendance  AttendanceConfig
	Credentials CredentialsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// StoreConfig selects and configures the row-store backend.
type StoreConfig struct {
	// Backend is one of "sheets", "excel", "postgres", "memory".
	Backend string

	// Google Sheets backend
	SpreadsheetID      string
	ServiceAccountJSON string

	// Excel workbook backend
	WorkbookPath string

	// PostgreSQL backend
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AttendanceConfig holds the lateness thresholds and the clock zone.
type AttendanceConfig struct {
	// Location is the single fixed zone used for every "now" computation.
	// Server-local time is never used.
	Location *time.Location

	// Thresholds maps section code to its check-in cutoff. The "M"
	// threshold is the fallback for unrecognized sections.
	Thresholds map[string]Threshold
}

// Threshold is a time-of-day cutoff; a check-in strictly after it is late.
type Threshold struct {
	Hour   int
	Minute int
}

// CredentialsConfig is the fixed credential-to-role table for login.
type CredentialsConfig struct {
	AdminPassword string
	HRPassword    string
	GatePassword  string
}

func Load() (*Config, error) {
	// .env is optional; a missing file means plain environment variables.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	origins := getEnvSlice("ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: origins,
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Store = StoreConfig{
		Backend:            getEnv("STORE_BACKEND", "sheets"),
		SpreadsheetID:      getEnv("SPREADSHEET_ID", ""),
		ServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT", ""),
		WorkbookPath:       getEnv("WORKBOOK_PATH", "attendance.xlsx"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "attendance"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	// The deployment site runs on UAE time; the default keeps scans on
	// UTC+4 regardless of where the server itself runs.
	loc, err := time.LoadLocation(getEnv("TIME_LOCATION", "Asia/Dubai"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_LOCATION: %w", err)
	}

	thresholds, err := parseThresholds(getEnv("SECTION_THRESHOLDS", "M=07:30,F=08:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid SECTION_THRESHOLDS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Location:   loc,
		Thresholds: thresholds,
	}

	config.Credentials = CredentialsConfig{
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		HRPassword:    getEnv("HR_PASSWORD", ""),
		GatePassword:  getEnv("GATE_PASSWORD", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, ok := c.Attendance.Thresholds["M"]; !ok {
		return fmt.Errorf("SECTION_THRESHOLDS must define section M (fallback threshold)")
	}
	switch c.Store.Backend {
	case "sheets":
		if c.Store.SpreadsheetID == "" {
			return fmt.Errorf("SPREADSHEET_ID is required for the sheets backend")
		}
		if c.Store.ServiceAccountJSON == "" {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT is required for the sheets backend")
		}
	case "postgres":
		if c.Store.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	case "excel", "memory":
	default:
		return fmt.Errorf("unsupported STORE_BACKEND: %s", c.Store.Backend)
	}
	if c.Credentials.AdminPassword == "" || c.Credentials.HRPassword == "" || c.Credentials.GatePassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD, HR_PASSWORD and GATE_PASSWORD are required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.Name,
		c.Store.Database.SSLMode,
	)
}

// parseThresholds parses "M=07:30,F=08:00" into per-section cutoffs.
func parseThresholds(raw string) (map[string]Threshold, error) {
	out := make(map[string]Threshold)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		section, clock, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed threshold %q", pair)
		}
		hh, mm, ok := strings.Cut(clock, ":")
		if !ok {
			return nil, fmt.Errorf("malformed threshold time %q", clock)
		}
		hour, err := strconv.Atoi(hh)
		if err != nil || hour < 0 || hour > 23 {
			return nil, fmt.Errorf("bad hour in threshold %q", pair)
		}
		minute, err := strconv.Atoi(mm)
		if err != nil || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("bad minute in threshold %q", pair)
		}
		out[strings.ToUpper(strings.TrimSpace(section))] = Threshold{Hour: hour, Minute: minute}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no thresholds defined")
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
