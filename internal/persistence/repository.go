// Package persistence provides the generic repository and the unit of work
// that compose entity mutations into one atomic commit over a domain.Session.
package persistence

import (
	"context"

	"github.com/xbensieve/room-booking-api/internal/domain"
)

// EntityPtr constrains P to be a pointer to the entity struct T.
// Only pointers can be tracked by a session, so primitives never satisfy it.
type EntityPtr[T any] interface {
	*T
	domain.Entity
}

// Repository exposes uniform CRUD and query operations for one entity type.
// Mutations are only staged; they reach the store when the owning unit of work commits.
// Staging through a repository whose unit of work is closed or aborted is silently
// ignored; the failure surfaces when Commit returns domain.ErrSessionClosed or
// domain.ErrSessionAborted.
type Repository[T any, P EntityPtr[T]] struct {
	session domain.Session
	schema  domain.Schema
}

// NewRepository creates a repository for T bound to session.
func NewRepository[T any, P EntityPtr[T]](session domain.Session) *Repository[T, P] {
	return &Repository[T, P]{
		session: session,
		schema:  P(new(T)).Schema(),
	}
}

// GetByID looks up an entity by primary key. A missing row is reported as (nil, false, nil).
func (r *Repository[T, P]) GetByID(ctx context.Context, id any) (P, bool, error) {
	entity := P(new(T))
	found, err := r.session.Find(ctx, entity, id)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return entity, true, nil
}

// GetAll returns every stored entity. Soft-deleted rows are not filtered out.
func (r *Repository[T, P]) GetAll(ctx context.Context) ([]P, error) {
	return r.Query().List(ctx)
}

// Add stages entity for insertion.
func (r *Repository[T, P]) Add(entity P) {
	r.session.Add(entity)
}

// Update stages entity as modified.
func (r *Repository[T, P]) Update(entity P) {
	r.session.Update(entity)
}

// Delete stages entity for removal.
func (r *Repository[T, P]) Delete(entity P) {
	r.session.Remove(entity)
}

// Query returns an unexecuted, composable query over T.
func (r *Repository[T, P]) Query() Query[T, P] {
	return Query[T, P]{
		session: r.session,
		schema:  r.schema,
	}
}

// Search returns every entity matching predicate. The predicate is evaluated by the store.
func (r *Repository[T, P]) Search(ctx context.Context, predicate domain.Predicate) ([]P, error) {
	return r.Query().Where(predicate).List(ctx)
}

// Exists reports whether at least one stored or staged entity matches predicate.
func (r *Repository[T, P]) Exists(ctx context.Context, predicate domain.Predicate) (bool, error) {
	return r.Query().Where(predicate).Exists(ctx)
}
