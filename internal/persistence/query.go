package persistence

import (
	"context"
	"slices"

	"github.com/xbensieve/room-booking-api/internal/domain"
)

// Query is an immutable, not yet executed query over one entity type.
// Every builder method returns a copy, so a Query can be shared and refined freely.
type Query[T any, P EntityPtr[T]] struct {
	session  domain.Session
	schema   domain.Schema
	criteria domain.Criteria
}

// Where narrows the query with predicate. Predicates are combined with AND; nil is ignored.
func (q Query[T, P]) Where(predicate domain.Predicate) Query[T, P] {
	if predicate == nil {
		return q
	}
	q.criteria.Where = append(slices.Clip(q.criteria.Where), predicate)
	return q
}

// OrderBy appends ordering clauses such as "created_at DESC".
func (q Query[T, P]) OrderBy(clauses ...string) Query[T, P] {
	q.criteria.OrderBy = append(slices.Clip(q.criteria.OrderBy), clauses...)
	return q
}

// Limit caps the number of returned rows. Zero means no limit.
func (q Query[T, P]) Limit(n uint64) Query[T, P] {
	q.criteria.Limit = n
	return q
}

// Offset skips the first n rows.
func (q Query[T, P]) Offset(n uint64) Query[T, P] {
	q.criteria.Offset = n
	return q
}

// Page applies Limit and Offset for a 1-based page number.
func (q Query[T, P]) Page(page, pageSize int) (Query[T, P], error) {
	if pageSize <= 0 {
		return q, domain.NewValidationErr("page_size must be greater than 0")
	}
	if page <= 0 {
		return q, domain.NewValidationErr("page must be greater than 0")
	}
	return q.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize)), nil
}

// List executes the query and returns all matching entities.
func (q Query[T, P]) List(ctx context.Context) ([]P, error) {
	var entities []P
	err := q.session.Select(ctx, q.schema, q.criteria, func() domain.Entity {
		entity := P(new(T))
		entities = append(entities, entity)
		return entity
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// First executes the query and returns its first entity, if any.
func (q Query[T, P]) First(ctx context.Context) (P, bool, error) {
	entities, err := q.Limit(1).List(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(entities) == 0 {
		return nil, false, nil
	}
	return entities[0], true, nil
}

// Count returns the number of matching rows, ignoring ordering and paging.
func (q Query[T, P]) Count(ctx context.Context) (int64, error) {
	return q.session.Count(ctx, q.schema, q.criteria)
}

// Exists reports whether List would return at least one row, without fetching
// the result set. Ordering is ignored; Offset is honoured.
func (q Query[T, P]) Exists(ctx context.Context) (bool, error) {
	return q.session.Exists(ctx, q.schema, q.criteria)
}
