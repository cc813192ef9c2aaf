package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/healthtrack-api/internal/config"
	apperrors "github.com/jwalitptl/healthtrack-api/pkg/errors"
	"github.com/jwalitptl/healthtrack-api/pkg/metrics"
)

// pq error code for unique constraint violations
const uniqueViolationCode = "23505"

// Store is the process-wide persistence handle. All repositories share
// one Store; a failed operation never invalidates the handle.
type Store struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

var (
	mu        sync.Mutex
	singleton *Store
)

// Open establishes the store connection once per process and migrates
// the schema to CurrentSchema. Concurrent and repeated callers all
// receive the same live handle; a failed open leaves the singleton
// unset so a later call can retry.
func Open(cfg config.DatabaseConfig, m *metrics.Metrics) (*Store, error) {
	mu.Lock()
	defer mu.Unlock()

	if singleton != nil {
		return singleton, nil
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, apperrors.NewUnavailable("store unavailable", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.NewUnavailable("store unavailable", err)
	}

	s := &Store{db: db, metrics: m}
	if err := s.Migrate(context.Background(), CurrentSchema); err != nil {
		db.Close()
		return nil, err
	}

	if m != nil {
		m.StoreConnections.Set(float64(db.Stats().OpenConnections))
	}

	singleton = s
	return singleton, nil
}

// DB exposes the underlying handle for repositories.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close shuts the connection pool down and resets the singleton.
func (s *Store) Close() error {
	mu.Lock()
	defer mu.Unlock()
	if singleton == s {
		singleton = nil
	}
	return s.db.Close()
}

// Migrate brings the live database up to the declared schema. Missing
// collections and indexes are created; existing ones are never dropped
// or altered. Safe to run repeatedly.
func (s *Store) Migrate(ctx context.Context, schema Schema) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	err := s.db.GetContext(ctx, &current, `SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if current >= schema.Version {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, c := range schema.Collections {
		if _, err := tx.ExecContext(ctx, c.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", c.Name, err)
		}
		for _, stmt := range c.CreateIndexSQL() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create index on %s: %w", c.Name, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("failed to reset schema version: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_version (version) VALUES ($1)`, schema.Version); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return tx.Commit()
}

// WithTx executes fn inside a transaction.
func (s *Store) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Observe records one store operation for metrics.
func (s *Store) Observe(collection, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues(collection, operation).Inc()
	s.metrics.StoreLatency.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues(collection, operation).Inc()
	}
}

// IsUniqueViolation reports whether err is a unique-index collision.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
