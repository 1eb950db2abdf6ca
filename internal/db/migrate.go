package db

import (
	"embed"
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Tables lists every table the schema creates.
var Tables = []string{
	"clients",
	"estimates",
	"estimate_items",
	"invoices",
	"invoice_items",
	"products",
	"revenue",
	"settings",
}

// Indexes lists the secondary indexes on products.
var Indexes = []string{
	"idx_products_sku",
	"idx_products_category",
	"idx_products_supplier",
}

// Migrate applies the embedded SQL migrations. It is safe to call on every
// startup: an up-to-date database is left untouched, and the DDL itself only
// creates what is missing.
func Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer src.Close()

	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	// The migrate instance is not closed: that would close the shared connection.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sql migrations failed: %w", err)
	}

	// sanity check: ensure required tables exist
	for _, table := range Tables {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}
