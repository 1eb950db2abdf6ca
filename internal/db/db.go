package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/diewo77/quotemaster/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// busyTimeoutMS bounds how long SQLite waits on a locked database file.
const busyTimeoutMS = 5000

// Open opens the SQLite database described by cfg, creating the data
// directory on first run. The pool is capped at a single connection and
// foreign key enforcement is verified before returning.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", cfg.DataDir, err)
		}
		dsn = cfg.Path()
	}
	dsn = WithConnParams(dsn)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	if fk != 1 {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("foreign key enforcement is disabled for %q", dsn)
	}
	return db, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithConnParams appends the per-connection pragmas every connection needs
// unless the DSN already sets them.
func WithConnParams(dsn string) string {
	params := []string{}
	lower := strings.ToLower(dsn)
	if !strings.Contains(lower, "_foreign_keys=") && !strings.Contains(lower, "_fk=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(lower, "_busy_timeout=") && !strings.Contains(lower, "_timeout=") {
		params = append(params, fmt.Sprintf("_busy_timeout=%d", busyTimeoutMS))
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
