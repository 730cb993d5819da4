package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type changeKind int

const (
	changeAdd changeKind = iota
	changeModify
	changeRemove
)

func (k changeKind) String() string {
	switch k {
	case changeAdd:
		return "add"
	case changeModify:
		return "modify"
	default:
		return "remove"
	}
}

type change struct {
	kind   changeKind
	entity domain.Entity
}

type sessionState int

const (
	sessionOpen sessionState = iota
	sessionAborted
	sessionClosed
)

// Session implements domain.Session over a *sql.DB.
//
// Changes are kept in memory until they are needed: before any read, pending
// changes are flushed into a transaction that is begun lazily, so reads observe
// everything staged so far. SaveChanges flushes what is left and commits.
// The transaction outlives the context of the operation that begins it; each
// statement runs under its caller's context and only Close or a failed
// operation rolls the transaction back.
// A Session is not safe for concurrent use.
type Session struct {
	db       *sql.DB
	dialect  Dialect
	tx       *sql.Tx
	pending  []change
	affected int64
	state    sessionState
}

// NewSession creates a new Session.
func NewSession(db *sql.DB, dialect Dialect) *Session {
	return &Session{
		db:      db,
		dialect: dialect,
	}
}

// Add stages entity for insertion. Staging the same entity twice has no effect.
// Once the session is closed or aborted nothing is staged, and the next
// SaveChanges reports domain.ErrSessionClosed or domain.ErrSessionAborted.
func (s *Session) Add(entity domain.Entity) {
	if s.state != sessionOpen || s.indexOf(entity) >= 0 {
		return
	}
	s.pending = append(s.pending, change{kind: changeAdd, entity: entity})
}

// Update stages entity as modified. An entity that already has a pending change
// keeps it: a pending insert writes the latest field values anyway.
// Like Add, it is ignored once the session is closed or aborted.
func (s *Session) Update(entity domain.Entity) {
	if s.state != sessionOpen || s.indexOf(entity) >= 0 {
		return
	}
	s.pending = append(s.pending, change{kind: changeModify, entity: entity})
}

// Remove stages entity for deletion. Removing an entity whose insert is still
// pending cancels the insert. Like Add, it is ignored once the session is
// closed or aborted.
func (s *Session) Remove(entity domain.Entity) {
	if s.state != sessionOpen {
		return
	}
	i := s.indexOf(entity)
	switch {
	case i < 0:
		s.pending = append(s.pending, change{kind: changeRemove, entity: entity})
	case s.pending[i].kind == changeAdd:
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
	default:
		s.pending[i].kind = changeRemove
	}
}

// Find loads the row whose primary key equals key into dst.
func (s *Session) Find(ctx context.Context, dst domain.Entity, key any) (bool, error) {
	schema := dst.Schema()
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("table", schema.Table),
	))
	defer span.End()

	runner, err := s.reader(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	err = s.builder(runner).
		Select(schema.Columns...).
		From(schema.Table).
		Where(squirrel.Eq{schema.Key(): key}).
		QueryRowContext(spanCtx).
		Scan(dst.Pointers()...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, fmt.Errorf("find %s: %w", schema.Table, err)
	}
	return true, nil
}

// Select streams every row matching c. next is called once per row and must
// return a fresh destination entity.
func (s *Session) Select(ctx context.Context, schema domain.Schema, c domain.Criteria, next func() domain.Entity) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("table", schema.Table),
	))
	defer span.End()

	runner, err := s.reader(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	qry := s.builder(runner).
		Select(schema.Columns...).
		From(schema.Table)
	qry = applyWhere(qry, c)
	if len(c.OrderBy) > 0 {
		qry = qry.OrderBy(c.OrderBy...)
	}
	qry = s.applyPaging(qry, c)

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("select %s: %w", schema.Table, err)
	}
	defer rows.Close() //nolint:errcheck

	count := 0
	for rows.Next() {
		if err := rows.Scan(next().Pointers()...); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return fmt.Errorf("scan %s: %w", schema.Table, err)
		}
		count++
	}
	if telemetry.RecordErrorAndStatus(span, rows.Err()) {
		return fmt.Errorf("select %s: %w", schema.Table, rows.Err())
	}
	span.SetAttributes(attribute.Int("rows", count))
	return nil
}

// Count returns the number of rows matching c. Ordering and paging are ignored.
func (s *Session) Count(ctx context.Context, schema domain.Schema, c domain.Criteria) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("table", schema.Table),
	))
	defer span.End()

	runner, err := s.reader(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	qry := s.builder(runner).
		Select("COUNT(*)").
		From(schema.Table)
	qry = applyWhere(qry, c)

	var total int64
	err = qry.QueryRowContext(spanCtx).Scan(&total)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, fmt.Errorf("count %s: %w", schema.Table, err)
	}
	return total, nil
}

// Exists reports whether at least one row matches c. Ordering is ignored and
// Offset skips that many matching rows, so Exists agrees with whether Select
// of the same criteria returns any row.
func (s *Session) Exists(ctx context.Context, schema domain.Schema, c domain.Criteria) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("table", schema.Table),
	))
	defer span.End()

	runner, err := s.reader(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	qry := s.builder(runner).
		Select("1").
		From(schema.Table)
	qry = applyWhere(qry, c).Limit(1)
	if c.Offset > 0 {
		qry = qry.Offset(c.Offset)
	}

	var one int
	err = qry.QueryRowContext(spanCtx).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, fmt.Errorf("exists %s: %w", schema.Table, err)
	}
	return true, nil
}

// Flush writes the pending changes into the open transaction without committing,
// so generated keys are assigned to the staged entities. Nothing becomes visible
// outside the session until SaveChanges.
func (s *Session) Flush(ctx context.Context) error {
	if err := s.usable(); err != nil {
		return err
	}
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("pending_changes", len(s.pending)),
	))
	defer span.End()

	err := s.flush(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// SaveChanges flushes every pending change and commits the transaction,
// returning the number of rows affected since the previous commit.
// On failure the transaction is rolled back and the session is aborted.
func (s *Session) SaveChanges(ctx context.Context) (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if s.tx == nil && len(s.pending) == 0 {
		return 0, nil
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("pending_changes", len(s.pending)),
	))
	defer span.End()

	if err := s.flush(spanCtx); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}

	if err := s.tx.Commit(); err != nil {
		err = s.abort(fmt.Errorf("commit transaction: %w", MapError(err)))
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}

	affected := s.affected
	s.tx = nil
	s.affected = 0
	span.SetAttributes(attribute.Int64("rows_affected", affected))
	return affected, nil
}

// Close rolls back any uncommitted work and releases the session.
// Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s.state == sessionClosed {
		return nil
	}
	s.state = sessionClosed
	s.pending = nil

	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback session: %w", err)
	}
	return nil
}

func (s *Session) usable() error {
	switch s.state {
	case sessionClosed:
		return domain.ErrSessionClosed
	case sessionAborted:
		return domain.ErrSessionAborted
	}
	return nil
}

// reader flushes pending changes and returns the runner reads must go through.
func (s *Session) reader(ctx context.Context) (squirrel.BaseRunner, error) {
	if err := s.usable(); err != nil {
		return nil, err
	}
	if err := s.flush(ctx); err != nil {
		return nil, err
	}
	if s.tx != nil {
		return s.tx, nil
	}
	return s.db, nil
}

// flush writes pending changes into the transaction, beginning it if needed.
func (s *Session) flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}

	if s.tx == nil {
		// database/sql rolls a transaction back when its context ends, which would
		// discard flushed work before SaveChanges runs under a different context.
		tx, err := s.db.BeginTx(context.WithoutCancel(ctx), nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		s.tx = tx
	}

	for len(s.pending) > 0 {
		c := s.pending[0]
		affected, err := s.apply(ctx, c)
		if err != nil {
			return s.abort(fmt.Errorf("%s %s: %w", c.kind, c.entity.Schema().Table, err))
		}
		s.affected += affected
		s.pending = s.pending[1:]
	}
	s.pending = nil
	return nil
}

func (s *Session) apply(ctx context.Context, c change) (int64, error) {
	switch c.kind {
	case changeAdd:
		return s.insert(ctx, c.entity)
	case changeModify:
		return s.update(ctx, c.entity)
	default:
		return s.delete(ctx, c.entity)
	}
}

func (s *Session) insert(ctx context.Context, entity domain.Entity) (int64, error) {
	schema := entity.Schema()
	columns, values := schema.Columns, utcValues(entity.Values())

	if !schema.GeneratedKey {
		res, err := s.builder(s.tx).
			Insert(schema.Table).
			Columns(columns...).
			Values(values...).
			ExecContext(ctx)
		if err != nil {
			return 0, MapError(err)
		}
		return res.RowsAffected()
	}

	err := s.builder(s.tx).
		Insert(schema.Table).
		Columns(columns[1:]...).
		Values(values[1:]...).
		Suffix("RETURNING " + schema.Key()).
		QueryRowContext(ctx).
		Scan(entity.Pointers()[0])
	if err != nil {
		return 0, MapError(err)
	}
	return 1, nil
}

func (s *Session) update(ctx context.Context, entity domain.Entity) (int64, error) {
	schema := entity.Schema()
	values := utcValues(entity.Values())

	qry := s.builder(s.tx).Update(schema.Table)
	for i, column := range schema.Columns[1:] {
		qry = qry.Set(column, values[i+1])
	}

	res, err := qry.
		Where(squirrel.Eq{schema.Key(): values[0]}).
		ExecContext(ctx)
	if err != nil {
		return 0, MapError(err)
	}
	return requireRows(res, schema, values[0])
}

func (s *Session) delete(ctx context.Context, entity domain.Entity) (int64, error) {
	schema := entity.Schema()
	key := entity.Values()[0]

	res, err := s.builder(s.tx).
		Delete(schema.Table).
		Where(squirrel.Eq{schema.Key(): key}).
		ExecContext(ctx)
	if err != nil {
		return 0, MapError(err)
	}
	return requireRows(res, schema, key)
}

// abort rolls back the transaction, drops pending changes and poisons the session.
func (s *Session) abort(err error) error {
	s.state = sessionAborted
	s.pending = nil
	s.affected = 0
	if s.tx == nil {
		return err
	}
	tx := s.tx
	s.tx = nil
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
	}
	return err
}

func (s *Session) indexOf(entity domain.Entity) int {
	for i, c := range s.pending {
		if c.entity == entity {
			return i
		}
	}
	return -1
}

func (s *Session) builder(runner squirrel.BaseRunner) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.
		PlaceholderFormat(s.dialect.Placeholder).
		RunWith(runner)
}

func (s *Session) applyPaging(qry squirrel.SelectBuilder, c domain.Criteria) squirrel.SelectBuilder {
	if c.Limit > 0 {
		qry = qry.Limit(c.Limit)
	}
	if c.Offset > 0 {
		if c.Limit == 0 && s.dialect.LimitRequiredForOffset {
			return qry.Suffix(fmt.Sprintf("LIMIT -1 OFFSET %d", c.Offset))
		}
		qry = qry.Offset(c.Offset)
	}
	return qry
}

func applyWhere(qry squirrel.SelectBuilder, c domain.Criteria) squirrel.SelectBuilder {
	for _, predicate := range c.Where {
		if predicate == nil {
			continue
		}
		qry = qry.Where(utcPredicate{predicate})
	}
	return qry
}

// requireRows turns an update or delete that matched nothing into a conflict.
func requireRows(res sql.Result, schema domain.Schema, key any) (int64, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, domain.NewConflictErr(
			fmt.Sprintf("%s row %v was modified or removed concurrently", schema.Table, key),
			nil,
		)
	}
	return affected, nil
}
