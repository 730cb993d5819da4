package domain

import "context"

// Session is a persistence session: a connection/transaction context owned by
// exactly one unit of work. Reads may suspend; Add, Update and Remove only stage
// changes that SaveChanges applies atomically.
type Session interface {
	// Find loads the entity whose primary key equals key into dst.
	Find(ctx context.Context, dst Entity, key any) (bool, error)
	// Select streams every row matching c, calling next for a fresh destination per row.
	Select(ctx context.Context, schema Schema, c Criteria, next func() Entity) error
	// Count returns the number of rows matching c.
	Count(ctx context.Context, schema Schema, c Criteria) (int64, error)
	// Exists reports whether at least one row matches c, skipping c.Offset matching rows.
	Exists(ctx context.Context, schema Schema, c Criteria) (bool, error)

	// Add stages entity for insertion.
	Add(entity Entity)
	// Update stages entity as modified.
	Update(entity Entity)
	// Remove stages entity for deletion.
	Remove(entity Entity)

	// Flush writes staged changes into the session transaction without committing,
	// assigning generated keys to the staged entities.
	Flush(ctx context.Context) error
	// SaveChanges applies every staged change in one transaction and returns the affected rows.
	SaveChanges(ctx context.Context) (int64, error)
	// Close releases the session, discarding anything not saved.
	Close() error
}

// SessionFactory opens persistence sessions.
type SessionFactory interface {
	OpenSession() Session
}
