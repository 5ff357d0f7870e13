// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "rpc_list": [
        "https://api.mainnet-beta.solana.com",
        "https://solana-api.projectserum.com"
    ],
    "commitment": "finalized",
    "retries": 5,
    "retry_delay_ms": 250,
    "debug_logging": true
}`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "valid config",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Len(t, cfg.RPCList, 2)
				assert.Equal(t, "finalized", cfg.Commitment)
				assert.Equal(t, 5, cfg.Retries)
				assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay())
				assert.True(t, cfg.DebugLogging)
			},
		},
		{
			name:    "defaults applied",
			content: `{"rpc_list": ["https://api.mainnet-beta.solana.com"]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultCommitment, cfg.Commitment)
				assert.Equal(t, DefaultRetries, cfg.Retries)
				assert.Equal(t, DefaultRetryDelayMs, cfg.RetryDelayMs)
				assert.Equal(t, DefaultLogFile, cfg.LogFile)
			},
		},
		{
			name:    "empty rpc_list",
			content: `{"rpc_list": []}`,
			wantErr: true,
		},
		{
			name:    "non-http rpc url",
			content: `{"rpc_list": ["wss://api.mainnet-beta.solana.com"]}`,
			wantErr: true,
		},
		{
			name:    "bad commitment",
			content: `{"rpc_list": ["https://api.mainnet-beta.solana.com"], "commitment": "eventual"}`,
			wantErr: true,
		},
		{
			name:    "bad retry delay",
			content: `{"rpc_list": ["https://api.mainnet-beta.solana.com"], "retry_delay_ms": 0}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeTestConfig(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestCommitmentType(t *testing.T) {
	tests := []struct {
		commitment string
		want       rpc.CommitmentType
	}{
		{"processed", rpc.CommitmentProcessed},
		{"confirmed", rpc.CommitmentConfirmed},
		{"finalized", rpc.CommitmentFinalized},
	}
	for _, tt := range tests {
		cfg := &Config{Commitment: tt.commitment}
		assert.Equal(t, tt.want, cfg.CommitmentType())
	}
}
