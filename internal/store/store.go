// Package store is the record store: every read and write of business
// records goes through a Store, one operation at a time.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/diewo77/quotemaster/internal/db"
	"github.com/diewo77/quotemaster/internal/logger"
	"github.com/diewo77/quotemaster/internal/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotInitialized is returned by operations on a store whose schema
	// has not been ensured yet.
	ErrNotInitialized = errors.New("store not initialized")
	// ErrClientHasRevenue is returned when deleting a client that recorded
	// revenue still references.
	ErrClientHasRevenue = errors.New("client has recorded revenue")
	// ErrDuplicate is returned when a unique number or SKU is already taken.
	ErrDuplicate = errors.New("already exists")
)

// Store serializes access to the database. The mutex is held for the whole
// of each operation, and each operation is one transaction.
type Store struct {
	mu      sync.Mutex
	db      *gorm.DB
	log     *zap.Logger
	metrics *metrics.Metrics
	ready   bool
}

// New wraps an open database. Init must be called before any operation.
// A nil metrics value disables instrumentation.
func New(gdb *gorm.DB, log *zap.Logger, m *metrics.Metrics) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: gdb, log: log.Named("store"), metrics: m}
}

// Init ensures the schema and the default settings row exist. Repeated calls
// are no-ops once the first one has succeeded.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	done := s.metrics.TrackStoreOperation("init")
	gdb := s.db.WithContext(ctx)
	if err := db.Migrate(gdb); err != nil {
		done(metrics.OutcomeError)
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := db.Seed(gdb); err != nil {
		done(metrics.OutcomeError)
		return fmt.Errorf("ensure default settings: %w", err)
	}
	done(metrics.OutcomeOK)

	s.ready = true
	s.log.Info("store initialized")
	return nil
}

// run executes fn in a transaction while holding the store lock. A panic in
// fn rolls the transaction back and the deferred unlock still runs.
func (s *Store) run(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.metrics.TrackStoreOperation(op)
	if !s.ready {
		done(metrics.OutcomeError)
		return ErrNotInitialized
	}

	err := s.db.WithContext(ctx).Transaction(fn)
	switch {
	case err == nil:
		done(metrics.OutcomeOK)
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey) && !errors.Is(err, ErrDuplicate):
		err = fmt.Errorf("%s: %w", op, ErrDuplicate)
	}

	if errors.Is(err, ErrNotFound) {
		done(metrics.OutcomeNotFound)
		return err
	}
	done(metrics.OutcomeError)
	s.logger(ctx).Warn("store operation failed", zap.String("operation", op), zap.Error(err))
	return err
}

// logger prefers the request logger carried by ctx.
func (s *Store) logger(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, s.log)
}

// notFound reports gorm's missing-record error as ErrNotFound for the named record.
func notFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return err
}

// requireRows turns an update or delete that matched nothing into ErrNotFound.
func requireRows(res *gorm.DB, kind string, id uint) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

// requireClient checks that the referenced client exists.
func requireClient(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Table("clients").Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	return nil
}
