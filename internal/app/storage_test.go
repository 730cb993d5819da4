package app

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqldb"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqlite"
)

func TestInitStorage_Initialize(t *testing.T) {
	depend.Register(log.New(os.Stdout, "", log.LstdFlags))

	tests := map[string]struct {
		driver          string
		expectedDialect sqldb.Dialect
		expectedErr     string
	}{
		"sqlite": {
			driver:          "sqlite",
			expectedDialect: sqldb.SQLite,
		},
		"unsupported-driver": {
			driver:      "oracle",
			expectedErr: `unsupported DB_DRIVER "oracle": expected postgres or sqlite`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("SQLITE_DSN", sqlite.MemoryDSN())

			s := &InitStorage{Driver: tt.driver}
			defer s.Close()

			_, err := s.Initialize(context.Background())
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)

			db, err := depend.Resolve[*sql.DB]()
			require.NoError(t, err)
			assert.NoError(t, db.Ping())

			dialect, err := depend.Resolve[sqldb.Dialect]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDialect, dialect)
		})
	}
}

func TestInitStorage_PostgresRequiresConnectionSettings(t *testing.T) {
	depend.Register(log.New(os.Stdout, "", log.LstdFlags))
	t.Setenv("DB_USER", "")
	require.NoError(t, os.Unsetenv("DB_USER"))

	s := &InitStorage{Driver: "postgres"}
	_, err := s.Initialize(context.Background())
	assert.ErrorContains(t, err, "load *postgres.InitDB configuration")
}

func TestInitStorage_CloseWithoutInitialize(t *testing.T) {
	s := &InitStorage{}
	assert.NotPanics(t, s.Close)
}
