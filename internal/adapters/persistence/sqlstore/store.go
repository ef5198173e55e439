// Package sqlstore implements the repository ports on database/sql.
//
// Two dialects are supported: SQLite through the pure-Go modernc.org/sqlite
// driver (local profile and tests) and PostgreSQL through pgx's stdlib
// adapter. Queries are written once with "?" placeholders and rebound per
// dialect.
//
// Opening a store:
//
//	store, err := sqlstore.Open(ctx, cfg.Database, sqlstore.WithMetrics(metrics))
//	defer store.Close()
//
//	processes := sqlstore.NewProcessRepository(store)
//
// Every repository call runs inside an OpenTelemetry client span and records
// the store operation metrics when metrics are configured. With WithBreaker,
// calls also pass through a circuit breaker; while it is open they fail fast
// with domain.ErrUnavailable.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker/v2"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/platform/config"
	"github.com/jsamuelsen11/process-service/internal/platform/telemetry"
)

// Store owns the connection pool shared by the repositories.
type Store struct {
	db      *sql.DB
	dialect dialect
	clock   domain.Clock
	metrics *telemetry.Metrics
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock handed to entities rehydrated from storage.
func WithClock(clock domain.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMetrics enables store operation metrics. Without it metric recording
// is skipped.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithBreaker guards every repository call with a circuit breaker that
// opens after cfg.MaxFailures consecutive database failures. Not-found,
// validation and conflict outcomes are answers, not failures, and never trip
// it. A MaxFailures of zero leaves the store unguarded.
func WithBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) Option {
	return func(s *Store) {
		if cfg.MaxFailures <= 0 {
			return
		}
		s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "database",
			MaxRequests: toUint32(cfg.HalfOpenLimit),
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
			},
			IsSuccessful: func(err error) bool {
				return !isInfrastructureError(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
}

// Open connects to the configured database, verifies the connection, and
// applies pending migrations when cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	d, err := parseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driverName(), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", d, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("connecting to %s database: %w", d, err), db.Close())
	}

	s := newStore(db, d, opts...)
	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			return nil, errors.Join(err, db.Close())
		}
	}
	return s, nil
}

// New wraps an already opened pool. driver is "sqlite" or "postgres".
func New(db *sql.DB, driver string, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, &domain.MissingReferenceError{Name: "db"}
	}
	d, err := parseDialect(driver)
	if err != nil {
		return nil, err
	}
	return newStore(db, d, opts...), nil
}

func newStore(db *sql.DB, d dialect, opts ...Option) *Store {
	s := &Store{db: db, dialect: d, clock: domain.SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Shutdown is Close for the dependency injector, which calls it when the
// graph is torn down.
func (s *Store) Shutdown(context.Context) error {
	return s.Close()
}

// Name identifies the store in readiness reports. Together with HealthCheck
// it satisfies ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database. An open breaker fails the check without
// touching the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.breaker != nil && s.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s database: failing (circuit breaker open)", s.dialect)
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s database unreachable: %w", s.dialect, err)
	}
	return nil
}

// inTx runs fn in a transaction, committing when fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// requireAffected maps a write that touched no row to domain.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
