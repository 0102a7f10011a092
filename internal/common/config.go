package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Folders  FolderConfig
	Batch    BatchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds the ops HTTP server configuration
type ServerConfig struct {
	HTTPAddr string
}

// FolderConfig holds the document folder layout.
type FolderConfig struct {
	IncomingDir   string
	ProcessedDir  string
	DuplicatesDir string
	ErrorsDir     string
}

// BatchConfig holds batch scheduling and tunables-file settings.
type BatchConfig struct {
	TrackerConfigPath string // YAML tunables (generic patterns, hash window, scaling bands)
	AgentsConfigPath  string // agents.json for agent provisioning
	CronSchedule      string
	WatchIncoming     bool // also process files as they land, via fsnotify
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Folders: FolderConfig{
			IncomingDir:   getEnv("INCOMING_DIR", "./data/documents/incoming"),
			ProcessedDir:  getEnv("PROCESSED_DIR", "./data/documents/processed"),
			DuplicatesDir: getEnv("DUPLICATES_DIR", "./data/documents/duplicates"),
			ErrorsDir:     getEnv("ERRORS_DIR", "./data/documents/errors"),
		},
		Batch: BatchConfig{
			TrackerConfigPath: getEnv("TRACKER_CONFIG", "./config/tracker.yaml"),
			AgentsConfigPath:  getEnv("AGENTS_CONFIG", "./config/agents.json"),
			CronSchedule:      getEnv("BATCH_SCHEDULE", "@every 10m"),
			WatchIncoming:     getEnv("WATCH_INCOMING", "") == "true",
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Folders.IncomingDir == "" {
		return NewAppError("CONFIG_ERROR", "INCOMING_DIR is required", ErrInvalidInput)
	}
	return nil
}
