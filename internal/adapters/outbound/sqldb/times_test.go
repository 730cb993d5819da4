package sqldb

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtcValues(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	zoned := time.Date(2026, 3, 11, 1, 0, 0, 0, tokyo)
	utc := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	var nilTime *time.Time

	tests := map[string]struct {
		value    any
		expected any
	}{
		"zoned-time": {
			value:    zoned,
			expected: utc,
		},
		"zoned-time-pointer": {
			value:    &zoned,
			expected: &utc,
		},
		"nil-time-pointer": {
			value:    nilTime,
			expected: nilTime,
		},
		"not-a-time": {
			value:    "Deluxe",
			expected: "Deluxe",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := utcValues([]any{tt.value})
			require.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0])
		})
	}
}

func TestUtcPredicate_ToSql(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	zoned := time.Date(2026, 3, 11, 1, 0, 0, 0, tokyo)

	sql, args, err := utcPredicate{squirrel.And{
		squirrel.Eq{"room_id": 1},
		squirrel.Lt{"check_in": zoned},
	}}.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "(room_id = ? AND check_in < ?)", sql)
	assert.Equal(t, []any{1, time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)}, args)
}
