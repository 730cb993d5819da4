package sqldb

import (
	"time"

	"github.com/xbensieve/room-booking-api/internal/domain"
)

// utcValues returns values with every time converted to UTC. SQLite keeps
// time.Time values as text in the value's own zone, so range comparisons only
// order instants correctly when every bound time is in UTC.
func utcValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = utcValue(v)
	}
	return out
}

func utcValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t == nil {
			return t
		}
		u := t.UTC()
		return &u
	}
	return v
}

// utcPredicate renders the wrapped predicate with its time arguments in UTC.
type utcPredicate struct {
	domain.Predicate
}

func (p utcPredicate) ToSql() (string, []any, error) {
	sql, args, err := p.Predicate.ToSql()
	if err != nil {
		return "", nil, err
	}
	return sql, utcValues(args), nil
}
