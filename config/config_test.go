package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

func validConfig() *Config {
	cfg := Default()
	cfg.Protocol.ProgramID = "11111111111111111111111111111111"
	cfg.Protocol.UnderlyingMints = []string{"So11111111111111111111111111111111111111112"}
	return cfg
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "full config",
			configYAML: `
rpc:
  endpoint: "https://rpc.example.com"
  commitment: finalized
  request_timeout: 5s
  rate_limit:
    requests_per_second: 4
    burst: 2
wallet_address: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
protocol:
  program_id: "11111111111111111111111111111111"
  rounds_per_page: 10
  index_mode: global
  underlying_mints:
    - So11111111111111111111111111111111111111112
    - EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v
price_list:
  throttle_delay: 500ms
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://rpc.example.com", cfg.RPC.Endpoint)
				assert.Equal(t, "finalized", cfg.RPC.Commitment)
				assert.Equal(t, 5*time.Second, cfg.RPC.RequestTimeout)
				assert.Equal(t, 4.0, cfg.RPC.RateLimit.RequestsPerSecond)
				assert.Equal(t, 2, cfg.RPC.RateLimit.Burst)
				assert.Equal(t, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", cfg.WalletAddress)
				assert.Equal(t, uint64(10), cfg.Protocol.RoundsPerPage)
				assert.Equal(t, IndexModeGlobal, cfg.Protocol.IndexMode)
				assert.Len(t, cfg.Protocol.UnderlyingMints, 2)
				assert.Equal(t, 500*time.Millisecond, cfg.PriceList.ThrottleDelay)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "defaults kept for missing sections",
			configYAML: `
protocol:
  program_id: "11111111111111111111111111111111"
  underlying_mints: ["So11111111111111111111111111111111111111112"]
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultRPCEndpoint, cfg.RPC.Endpoint)
				assert.Equal(t, DefaultCommitment, cfg.RPC.Commitment)
				assert.Equal(t, DefaultTokenListURL, cfg.TokenRegistry.URL)
				assert.Equal(t, "state", cfg.Protocol.StateSeed)
				assert.Equal(t, "price_per_share", cfg.Protocol.PricePageSeed)
				assert.Equal(t, 8, cfg.Protocol.PageIndexWidth)
				assert.Equal(t, IndexModePageLocal, cfg.Protocol.IndexMode)
				assert.Equal(t, "Katana", cfg.Protocol.DerivativeTag)
				assert.Equal(t, "kc", cfg.Protocol.DerivativeSymbolPrefix)
				assert.Equal(t, 300*time.Millisecond, cfg.PriceList.ThrottleDelay)
				assert.Empty(t, cfg.WalletAddress)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name:       "invalid yaml",
			configYAML: "rpc: [unclosed",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.configYAML)

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing program id", mutate: func(c *Config) { c.Protocol.ProgramID = "" }, wantErr: "program_id"},
		{name: "no mints", mutate: func(c *Config) { c.Protocol.UnderlyingMints = nil }, wantErr: "underlying_mints"},
		{name: "zero rounds per page", mutate: func(c *Config) { c.Protocol.RoundsPerPage = 0 }, wantErr: "rounds_per_page"},
		{name: "bad page index width", mutate: func(c *Config) { c.Protocol.PageIndexWidth = 3 }, wantErr: "page_index_width"},
		{name: "bad index mode", mutate: func(c *Config) { c.Protocol.IndexMode = "other" }, wantErr: "index_mode"},
		{name: "bad commitment", mutate: func(c *Config) { c.RPC.Commitment = "recent" }, wantErr: "commitment"},
		{name: "empty endpoint", mutate: func(c *Config) { c.RPC.Endpoint = "" }, wantErr: "endpoint"},
		{name: "negative rate", mutate: func(c *Config) { c.RPC.RateLimit.RequestsPerSecond = -1 }, wantErr: "rate_limit"},
		{name: "empty token list url", mutate: func(c *Config) { c.TokenRegistry.URL = "" }, wantErr: "url"},
		{name: "negative throttle", mutate: func(c *Config) { c.PriceList.ThrottleDelay = -time.Second }, wantErr: "throttle_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvRPCURL, "https://override.example.com")
	t.Setenv(EnvWallet, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	t.Setenv(EnvProgramID, "SysvarC1ock11111111111111111111111111111111")
	t.Setenv(EnvTokenListURL, "https://tokens.example.com/list.json")

	cfg := validConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "https://override.example.com", cfg.RPC.Endpoint)
	assert.Equal(t, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", cfg.WalletAddress)
	assert.Equal(t, "SysvarC1ock11111111111111111111111111111111", cfg.Protocol.ProgramID)
	assert.Equal(t, "https://tokens.example.com/list.json", cfg.TokenRegistry.URL)
}

func TestApplyEnvOverrides_EmptyKeepsFile(t *testing.T) {
	t.Setenv(EnvRPCURL, "")

	cfg := validConfig()
	cfg.RPC.Endpoint = "https://from-file.example.com"
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "https://from-file.example.com", cfg.RPC.Endpoint)
}
