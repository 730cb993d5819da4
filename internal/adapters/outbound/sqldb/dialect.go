// Package sqldb implements domain.Session on top of database/sql, rendering
// statements with squirrel so the same session serves PostgreSQL and SQLite.
package sqldb

import "github.com/Masterminds/squirrel"

// Dialect captures the SQL differences between supported engines.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	// LimitRequiredForOffset is set for engines that reject OFFSET without LIMIT.
	LimitRequiredForOffset bool
}

var (
	// Postgres renders $n placeholders.
	Postgres = Dialect{Name: "postgres", Placeholder: squirrel.Dollar}
	// SQLite renders ? placeholders.
	SQLite = Dialect{Name: "sqlite", Placeholder: squirrel.Question, LimitRequiredForOffset: true}
)
