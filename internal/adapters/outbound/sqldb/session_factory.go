package sqldb

import (
	"context"
	"database/sql"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
)

// SessionFactory opens sessions over a shared connection pool.
type SessionFactory struct {
	db      *sql.DB
	dialect Dialect
}

// NewSessionFactory creates a new SessionFactory.
func NewSessionFactory(db *sql.DB, dialect Dialect) SessionFactory {
	return SessionFactory{
		db:      db,
		dialect: dialect,
	}
}

// OpenSession opens a new session. No connection is taken until the session needs one.
func (f SessionFactory) OpenSession() domain.Session {
	return NewSession(f.db, f.dialect)
}

// InitSessionFactory is responsible for initializing the domain.SessionFactory dependency.
type InitSessionFactory struct {
	DB      *sql.DB `resolve:""`
	Dialect Dialect `resolve:""`
}

// Initialize registers the SessionFactory in the dependency container.
func (i InitSessionFactory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SessionFactory](NewSessionFactory(i.DB, i.Dialect))
	return ctx, nil
}
