package sqldb

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/xbensieve/room-booking-api/internal/domain"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
	serializationFailure    = "40001"
)

// MapError translates constraint and concurrency failures reported by the
// database driver into *domain.ConflictErr. Other errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var conflict *domain.ConflictErr
	if errors.As(err, &conflict) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return domain.NewConflictErr(fmt.Sprintf("unique constraint violation (%s)", pgErr.ConstraintName), err)
		case foreignKeyViolationCode:
			return domain.NewConflictErr(fmt.Sprintf("foreign key violation (%s)", pgErr.ConstraintName), err)
		case checkViolationCode:
			return domain.NewConflictErr(fmt.Sprintf("check constraint violation (%s)", pgErr.ConstraintName), err)
		case notNullViolationCode:
			return domain.NewConflictErr(fmt.Sprintf("not null violation (%s)", pgErr.ColumnName), err)
		case serializationFailure:
			return domain.NewConflictErr("concurrent update conflict", err)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return domain.NewConflictErr("constraint violation", err)
	}

	return err
}

// IsConflict reports whether err is a conflict reported by the store.
func IsConflict(err error) bool {
	var conflict *domain.ConflictErr
	return errors.As(err, &conflict)
}
