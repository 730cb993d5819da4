// Package sqlite provides the embedded SQLite storage engine. It is used for
// local runs and as the real store behind the persistence tests.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqldb"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MemoryDSN returns the DSN of a new, private in-memory database.
func MemoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
}

// Open opens the SQLite database at dsn and applies the embedded migrations.
//
// The pool is limited to a single connection: SQLite serializes writers anyway,
// and a single connection keeps in-memory databases shared by every session.
// As a consequence a goroutine must not hold two open transactions at once.
func Open(ctx context.Context, dsn string, logger *log.Logger) (*sql.DB, error) {
	db, err := otelsql.Open("sqlite3", dsn,
		otelsql.WithAttributes(semconv.DBSystemNameSqlite),
		otelsql.WithInstrumentAttributesGetter(sqldb.QueryAttributes(logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func runMigrations(db *sql.DB, logger *log.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Println("InitDB: sqlite migrations applied successfully")
	return nil
}

// InitDB initializes the SQLite database and registers the *sql.DB together
// with the SQLite dialect in the dependency container.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	Logger             *log.Logger `resolve:""`
	DSN                string      `config:"SQLITE_DSN" default:"file:booking.db?_foreign_keys=on&_busy_timeout=5000"`
}

// Initialize opens the database, runs migrations and registers the dependencies.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	db, err := Open(ctx, di.DSN, di.Logger)
	if err != nil {
		return ctx, err
	}
	di.db = db

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		otelsql.WithAttributes(semconv.DBSystemNameSqlite),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	depend.Register(di.db)
	depend.Register(sqldb.SQLite)

	return ctx, nil
}

// Close closes the database and unregisters its metrics.
func (di *InitDB) Close() {
	if di.db != nil {
		if err := di.db.Close(); err != nil {
			di.Logger.Printf("InitDB: failed to close database connection: %v", err)
		}
		if di.metricRegistration != nil {
			if err := di.metricRegistration.Unregister(); err != nil {
				di.Logger.Printf("InitDB: failed to unregister metric registration: %v", err)
			}
		}
	}
}
