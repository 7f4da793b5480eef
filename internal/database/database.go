// Package database contains the logic for establishing
// connections to the hero store.
//
// The store is either PostgreSQL or a SQLite file, picked from the
// connection URL:
//   - postgres:// and postgresql:// open a pgx connection pool
//   - sqlite:// (or a bare file path) opens a go-sqlite3 database
//
// For PostgreSQL it handles:
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog)
//   - optional New Relic instrumentation (nrpgx5)
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/superheroes/internal/config"
	loggerConfig "github.com/deppfellow/superheroes/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/mattn/go-sqlite3"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Driver names the backing store.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// ErrUnsupportedURL is returned for connection URLs with an unknown scheme.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Database wraps the open connection and a logger.
// It provides a simple object you can pass around the app.
//
// SQL is always set. For PostgreSQL it is a database/sql view over Pool,
// so queries still go through the pool and its tracers.
type Database struct {
	Driver Driver
	Pool   *pgxpool.Pool
	SQL    *sql.DB
	log    *zerolog.Logger
}

// multiTracer allows chaining multiple tracers.
//
// pgx supports a single Tracer in ConnConfig.
// This type acts as an adapter so you can run multiple tracer implementations:
//   - New Relic tracer (for distributed tracing/APM)
//   - tracelog.TraceLog (for local SQL logging in "local" env)
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx tracer interface.
//
// Returning a context allows tracers to store values for TraceQueryEnd later.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx tracer interface.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database "unreachable".
const DatabasePingTimeout = 10

// ParseURL splits a connection URL into the driver and the DSN the
// driver expects.
//
// SQLite URLs follow the SQLAlchemy convention: sqlite:///app.db is
// relative to the working directory and sqlite:////var/lib/app.db is
// absolute. sqlite://app.db is accepted as well.
func ParseURL(raw string) (Driver, string, error) {
	switch {
	case raw == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedURL)
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite:///"), nil
	case strings.HasPrefix(raw, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite://"), nil
	case strings.Contains(raw, "://"):
		scheme, _, _ := strings.Cut(raw, "://")
		return "", "", fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, scheme)
	default:
		return DriverSQLite, raw, nil
	}
}

// sqliteDSN enables foreign keys on every connection. Without it SQLite
// ignores ON DELETE CASCADE and accepts dangling hero_powers rows.
func sqliteDSN(path string) string {
	return path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
}

// New opens the store selected by cfg.Database.URL.
//
// Inputs:
//   - cfg: application config (url, pool settings, etc.)
//   - logger: main app logger
//   - loggerService: optional New Relic service (nil if not configured)
//
// The connection is pinged before returning so startup fails fast.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	driver, dsn, err := ParseURL(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	var database *Database
	switch driver {
	case DriverPostgres:
		database, err = newPostgres(cfg, dsn, logger, loggerService)
	default:
		database, err = newSQLite(cfg, dsn, logger)
	}
	if err != nil {
		return nil, err
	}

	// Ping the DB with a timeout, so startup fails fast if DB is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", string(driver)).Msg("connected to the database")

	return database, nil
}

func newPostgres(cfg *config.Config, dsn string, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	// Parse the DSN into a pgxpool config structure.
	// This also applies pgx defaults and validates format.
	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	// New Relic PostgreSQL instrumentation takes the single tracer slot.
	if loggerService != nil && loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// In local env, enable SQL query logging using pgx tracelog + zerolog.
	// This is very noisy, which is why it's only in local.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	return &Database{
		Driver: DriverPostgres,
		Pool:   pool,
		SQL:    stdlib.OpenDBFromPool(pool),
		log:    logger,
	}, nil
}

func newSQLite(cfg *config.Config, path string, logger *zerolog.Logger) (*Database, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)

	return &Database{
		Driver: DriverSQLite,
		SQL:    db,
		log:    logger,
	}, nil
}

// Ping checks that the store answers.
func (db *Database) Ping(ctx context.Context) error {
	if db.Driver == DriverPostgres {
		return db.Pool.Ping(ctx)
	}
	return db.SQL.PingContext(ctx)
}

// Close releases the underlying connections.
func (db *Database) Close() error {
	db.log.Info().Str("driver", string(db.Driver)).Msg("closing database connection")
	err := db.SQL.Close()
	if db.Pool != nil {
		db.Pool.Close()
	}
	return err
}
