package sqldb

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/XSAM/otelsql"
	"github.com/stretchr/testify/assert"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

func TestQueryAttributes(t *testing.T) {
	getter := QueryAttributes(log.New(os.Stdout, "", log.LstdFlags))

	tests := map[string]struct {
		method   otelsql.Method
		query    string
		expected int
	}{
		"select": {
			method:   otelsql.MethodConnQuery,
			query:    "SELECT id, name FROM hotels WHERE id = $1",
			expected: 2,
		},
		"insert": {
			method:   otelsql.MethodConnExec,
			query:    "INSERT INTO rooms (hotel_id,name) VALUES ($1,$2)",
			expected: 2,
		},
		"other-method-is-ignored": {
			method: otelsql.MethodTxCommit,
			query:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			attrs := getter(context.Background(), tt.method, tt.query, nil)
			assert.Len(t, attrs, tt.expected)
			for _, attr := range attrs {
				if attr.Key == semconv.DBCollectionNameKey {
					assert.NotEmpty(t, attr.Value.AsString())
				}
			}
		})
	}
}

func TestExtractSQLOperation(t *testing.T) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	operations, tables := extractSQLOperation(logger, "UPDATE reservations SET status = $1 WHERE id = $2")
	assert.Contains(t, operations, "UPDATE")
	assert.Contains(t, tables, "reservations")
}
