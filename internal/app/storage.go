package app

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/postgres"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqlite"
)

type storageEngine interface {
	Initialize(ctx context.Context) (context.Context, error)
	Close()
}

// InitStorage picks the storage engine named by DB_DRIVER and initializes it.
// Only the selected engine loads its configuration, so the PostgreSQL
// connection settings are not required when running on SQLite.
type InitStorage struct {
	engine storageEngine
	Driver string `config:"DB_DRIVER" default:"sqlite"`
}

// Initialize injects the selected engine and runs its initialization.
func (s *InitStorage) Initialize(ctx context.Context) (context.Context, error) {
	switch s.Driver {
	case "postgres":
		engine := &postgres.InitDB{}
		if err := loadEngine(ctx, engine); err != nil {
			return ctx, err
		}
		s.engine = engine
	case "sqlite":
		engine := &sqlite.InitDB{}
		if err := loadEngine(ctx, engine); err != nil {
			return ctx, err
		}
		s.engine = engine
	default:
		return ctx, fmt.Errorf("unsupported DB_DRIVER %q: expected postgres or sqlite", s.Driver)
	}
	return s.engine.Initialize(ctx)
}

// Close releases the selected engine.
func (s *InitStorage) Close() {
	if s.engine != nil {
		s.engine.Close()
	}
}

func loadEngine[T any](ctx context.Context, engine *T) error {
	if err := depend.ResolveStruct(engine); err != nil {
		return fmt.Errorf("resolve %T dependencies: %w", engine, err)
	}
	if err := config.LoadStruct(ctx, engine); err != nil {
		return fmt.Errorf("load %T configuration: %w", engine, err)
	}
	return nil
}
