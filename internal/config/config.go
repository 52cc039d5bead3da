// Package config provides configuration management for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/navikt/roomkiosk/internal/schedule"
)

// Config is the complete runtime configuration of the kiosk service
type Config struct {
	Port      string
	LogLevel  string
	RoomsFile string
	Kiosk     KioskConfig
	Admin     AdminConfig
	Redis     RedisConfig
}

// KioskConfig controls how schedules are rendered and refreshed
type KioskConfig struct {
	DayStartHour int
	DayEndHour   int
	MaxFreeBlock time.Duration
	TickInterval time.Duration
}

// Window returns the daily timeline window
func (k KioskConfig) Window() schedule.Window {
	return schedule.Window{StartHour: k.DayStartHour, EndHour: k.DayEndHour}
}

// AdminConfig holds settings for the admin endpoints
type AdminConfig struct {
	// PIN gates the admin endpoints. They are disabled when it is empty.
	PIN string
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for stored rooms (0 means no expiration)
	RoomTTL time.Duration
}

// Load reads configuration from environment variables only
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads an optional .env file into the environment and then
// reads the configuration. A missing file is not an error.
func LoadWithFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RoomsFile: getEnv("KIOSK_ROOMS_FILE", ""),
		Kiosk:     GetKioskConfig(),
		Admin:     AdminConfig{PIN: getEnv("KIOSK_ADMIN_PIN", "")},
		Redis:     GetRedisConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetKioskConfig loads kiosk display settings from environment variables
func GetKioskConfig() KioskConfig {
	return KioskConfig{
		DayStartHour: getEnvInt("KIOSK_DAY_START_HOUR", schedule.DefaultWindow.StartHour),
		DayEndHour:   getEnvInt("KIOSK_DAY_END_HOUR", schedule.DefaultWindow.EndHour),
		MaxFreeBlock: time.Duration(getEnvInt("KIOSK_MAX_FREE_BLOCK_MINUTES", 15)) * time.Minute,
		TickInterval: getEnvDuration("KIOSK_TICK_INTERVAL", 30*time.Second),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Rooms are only seeded at startup, so they never expire unless asked to
	ttl := time.Duration(getEnvInt("REDIS_ROOM_TTL_HOURS", 0)) * time.Hour

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI_ROOMKIOSK", ""),
		Host:      getEnv("REDIS_HOST_ROOMKIOSK", getEnv("REDIS_ADDRESS", "localhost")),
		Port:      getEnv("REDIS_PORT_ROOMKIOSK", "6379"),
		Username:  getEnv("REDIS_USERNAME_ROOMKIOSK", ""),
		Password:  getEnv("REDIS_PASSWORD_ROOMKIOSK", getEnv("REDIS_PASSWORD", "")),
		DB:        getEnvInt("REDIS_DB", 0),
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "roomkiosk:"),
		RoomTTL:   ttl,
	}
}

// Validate checks that the configuration can be served
func (c *Config) Validate() error {
	if err := c.Kiosk.Window().Validate(); err != nil {
		return fmt.Errorf("KIOSK_DAY_START_HOUR/KIOSK_DAY_END_HOUR: %w", err)
	}
	if c.Kiosk.MaxFreeBlock <= 0 {
		return fmt.Errorf("KIOSK_MAX_FREE_BLOCK_MINUTES must be positive")
	}
	if c.Kiosk.TickInterval <= 0 {
		return fmt.Errorf("KIOSK_TICK_INTERVAL must be positive")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be a number: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}
