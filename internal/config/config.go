// Package config provides application configuration loaded from environment variables.
package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm/logger"
)

// AppName names the data directory and database file.
const AppName = "quotemaster"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	App      AppConfig
}

// ServerConfig holds settings for the local command listener.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// Addr returns the host:port the listener binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// DatabaseConfig holds the location of the SQLite database.
type DatabaseConfig struct {
	// DataDir is the application-private directory holding the database file.
	DataDir string
	// File is the database file name inside DataDir.
	File string
	// DSN overrides DataDir/File when set, e.g. an in-memory database in tests.
	DSN      string
	LogLevel logger.LogLevel
}

// Path returns the database file path.
func (d DatabaseConfig) Path() string {
	return filepath.Join(d.DataDir, d.File)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Env string
}

// Dev reports whether the application runs outside production.
func (a AppConfig) Dev() bool {
	return a.Env != "production"
}

// Load reads configuration from environment variables.
// It uses sensible defaults for a single-user desktop install.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", "127.0.0.1"),
			Port:         getEnv("PORT", "8765"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			DataDir:  getEnv("DATA_DIR", defaultDataDir()),
			File:     getEnv("DB_FILE", AppName+".db"),
			DSN:      getEnv("DB_DSN", ""),
			LogLevel: getEnvLogLevel("DB_LOG_LEVEL", logger.Silent),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
	}
}

// defaultDataDir returns <user config dir>/quotemaster, or ./data when the
// platform has no user config directory.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".", "data")
	}
	return filepath.Join(dir, AppName)
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvLogLevel maps silent|error|warn|info to a gorm log level.
func getEnvLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch strings.ToLower(os.Getenv(key)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
