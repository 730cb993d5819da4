package domain

// Schema describes how an entity type maps onto a table.
// Columns[0] is always the primary key.
type Schema struct {
	Table   string
	Columns []string
	// GeneratedKey means the store assigns the primary key on insert and the
	// session writes it back into the entity.
	GeneratedKey bool
}

// Key returns the primary key column.
func (s Schema) Key() string {
	if len(s.Columns) == 0 {
		return ""
	}
	return s.Columns[0]
}

// Entity is implemented by every record type managed through a Session.
// Values and Pointers are aligned with Schema().Columns; Pointers are used as
// scan destinations, so implementations are expected on pointer receivers.
type Entity interface {
	Schema() Schema
	Values() []any
	Pointers() []any
}

// Predicate is a boolean expression over one entity that the store can evaluate.
// It has the same shape as squirrel.Sqlizer, so squirrel expressions can be used directly.
type Predicate interface {
	ToSql() (string, []any, error)
}

// Criteria carries the filtering, ordering and paging applied to a select.
type Criteria struct {
	Where   []Predicate
	OrderBy []string
	Limit   uint64
	Offset  uint64
}
