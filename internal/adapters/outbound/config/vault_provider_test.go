package config

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultServer(t *testing.T, data map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/booking" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
			return
		}
		assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"data": data,
				"metadata": map[string]any{
					"created_time":  "2024-01-01T00:00:00Z",
					"deletion_time": "",
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewVaultProvider(t *testing.T) {
	tests := map[string]struct {
		server, token, mountPath, secretPath string
		expectedErr                          string
	}{
		"valid": {
			server: "http://localhost:8200", token: "t", mountPath: "secret", secretPath: "booking",
		},
		"missing-server": {
			token: "t", mountPath: "secret", secretPath: "booking",
			expectedErr: "server is required",
		},
		"missing-token": {
			server: "http://localhost:8200", mountPath: "secret", secretPath: "booking",
			expectedErr: "token is required",
		},
		"missing-mount-path": {
			server: "http://localhost:8200", token: "t", secretPath: "booking",
			expectedErr: "mountPath is required",
		},
		"missing-secret-path": {
			server: "http://localhost:8200", token: "t", mountPath: "secret",
			expectedErr: "secretPath is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mountPath, tt.secretPath)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	srv := newVaultServer(t, map[string]any{
		"DB_DSN":      "postgres://booking",
		"PROBE_LIMIT": 4,
	})

	tests := map[string]struct {
		secretPath    string
		key           string
		expectedValue string
		expectErr     bool
	}{
		"string-value": {
			secretPath:    "booking",
			key:           "DB_DSN",
			expectedValue: "postgres://booking",
		},
		"missing-key": {
			secretPath: "booking",
			key:        "UNKNOWN",
			expectErr:  true,
		},
		"non-string-value": {
			secretPath: "booking",
			key:        "PROBE_LIMIT",
			expectErr:  true,
		},
		"missing-secret": {
			secretPath: "other",
			key:        "DB_DSN",
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, err := NewVaultProvider(srv.URL, "test-token", "secret", tt.secretPath)
			require.NoError(t, err)

			value, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestInitVaultProvider_WithoutAddress(t *testing.T) {
	t.Setenv("VAULT_ADDR", "")

	i := InitVaultProvider{
		Logger:     log.New(os.Stdout, "", log.LstdFlags),
		MountPath:  "secret",
		SecretPath: "booking",
	}

	ctx := context.Background()
	got, err := i.Initialize(ctx)
	assert.NoError(t, err)
	assert.Equal(t, ctx, got)
}

func TestInitVaultProvider_MissingToken(t *testing.T) {
	t.Setenv("VAULT_ADDR", "http://localhost:8200")
	t.Setenv("VAULT_TOKEN", "")

	i := InitVaultProvider{
		Logger:     log.New(os.Stdout, "", log.LstdFlags),
		MountPath:  "secret",
		SecretPath: "booking",
	}

	_, err := i.Initialize(context.Background())
	assert.ErrorContains(t, err, "token is required")
}
