package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("MEDIA_DRIVER", "local")
	t.Setenv("MEDIA_ROOT", t.TempDir())
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("SEED_ADMIN_PASSWORD", "")
	t.Setenv("SEED_USER_PASSWORD", "")
}

func TestRun(t *testing.T) {
	memoryEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "missing_passwords", args: nil, wantErr: true},
		{name: "missing_user_password", args: []string{"-admin-password", "admin-secret-1"}, wantErr: true},
		{name: "unknown_flag", args: []string{"-verbose"}, wantErr: true},
		{name: "seeds", args: []string{"-admin-password", "admin-secret-1", "-user-password", "sample-secret-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
