package persistence

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UnitOfWork owns one persistence session and hands out one repository per
// entity type. Everything staged through its repositories is applied by a single
// Commit. A UnitOfWork is not safe for concurrent use.
type UnitOfWork struct {
	session      domain.Session
	repositories map[reflect.Type]any
}

// NewUnitOfWork creates a UnitOfWork over session. The unit of work takes ownership of the session.
func NewUnitOfWork(session domain.Session) *UnitOfWork {
	return &UnitOfWork{
		session:      session,
		repositories: make(map[reflect.Type]any),
	}
}

// GetRepository returns the repository for T, creating and caching it on first use.
// Repeated calls on the same unit of work return the same instance.
func GetRepository[T any, P EntityPtr[T]](uow *UnitOfWork) *Repository[T, P] {
	key := reflect.TypeFor[T]()
	if repo, ok := uow.repositories[key]; ok {
		return repo.(*Repository[T, P])
	}
	repo := NewRepository[T, P](uow.session)
	uow.repositories[key] = repo
	return repo
}

// Flush writes the changes staged so far into the pending transaction, so keys
// generated by the store are available before Commit. A failed flush aborts the
// unit of work like a failed Commit.
func (u *UnitOfWork) Flush(ctx context.Context) error {
	return u.session.Flush(ctx)
}

// Commit atomically applies every change staged through this unit of work and
// returns the number of affected rows. On failure nothing is applied and the
// unit of work cannot be used again.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("repositories", len(u.repositories)),
	))
	defer span.End()

	affected, err := u.session.SaveChanges(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordCommit(spanCtx, "failed")
		return 0, fmt.Errorf("commit unit of work: %w", err)
	}
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	RecordCommit(spanCtx, "committed")
	return affected, nil
}

// Close releases the underlying session. Uncommitted changes are discarded and
// repositories obtained from this unit of work stop working. Close is idempotent.
func (u *UnitOfWork) Close() error {
	return u.session.Close()
}

// UnitOfWorkFactory starts units of work, one per logical operation.
type UnitOfWorkFactory struct {
	sessions domain.SessionFactory
}

// NewUnitOfWorkFactory creates a UnitOfWorkFactory opening sessions from sessions.
func NewUnitOfWorkFactory(sessions domain.SessionFactory) UnitOfWorkFactory {
	return UnitOfWorkFactory{
		sessions: sessions,
	}
}

// Begin starts a new unit of work. The caller must Close it on every exit path.
func (f UnitOfWorkFactory) Begin() *UnitOfWork {
	return NewUnitOfWork(f.sessions.OpenSession())
}

// Execute runs fn inside a new unit of work, commits when fn succeeds and
// always releases the unit of work.
func (f UnitOfWorkFactory) Execute(ctx context.Context, fn func(uow *UnitOfWork) error) (affected int64, err error) {
	uow := f.Begin()
	defer func() {
		if closeErr := uow.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := fn(uow); err != nil {
		return 0, err
	}
	return uow.Commit(ctx)
}

// InitUnitOfWorkFactory is responsible for initializing the UnitOfWorkFactory dependency.
type InitUnitOfWorkFactory struct {
	Sessions domain.SessionFactory `resolve:""`
}

// Initialize registers the UnitOfWorkFactory in the dependency container.
func (i InitUnitOfWorkFactory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewUnitOfWorkFactory(i.Sessions))
	return ctx, nil
}
