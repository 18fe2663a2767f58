package token_registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
)

const sampleTokenList = `{
  "name": "Solana Token List",
  "version": {"major": 0, "minor": 3, "patch": 0},
  "tokens": [
    {
      "chainId": 101,
      "address": "So11111111111111111111111111111111111111112",
      "symbol": "SOL",
      "name": "Wrapped SOL",
      "decimals": 9,
      "tags": [],
      "extensions": {"coingeckoId": "solana"}
    },
    {
      "chainId": 101,
      "address": "kcSoLMint1111111111111111111111111111111111",
      "symbol": "kcSOL",
      "name": "Katana covered call SOL",
      "decimals": 9,
      "tags": ["Katana", "lp-token"]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultTokenRegistryConfig()
	cfg.URL = server.URL
	cfg.RequestTimeout = 5 * time.Second
	return NewClient(cfg, zap.NewNop())
}

func TestClient_FetchTokenList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleTokenList))
	})

	list, err := client.FetchTokenList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Solana Token List", list.Name)
	assert.Equal(t, 3, list.Version.Minor)
	require.Len(t, list.Tokens, 2)
	assert.Equal(t, "solana", list.Tokens[0].Extensions.CoingeckoID)
	assert.Equal(t, 101, list.Tokens[0].ChainID)
	assert.True(t, list.Tokens[1].HasTag("Katana"))
	assert.False(t, list.Tokens[0].HasTag("Katana"))
}

func TestClient_FetchTokenList_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non 200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"tokens": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			list, err := client.FetchTokenList(context.Background())
			require.Error(t, err)
			assert.Nil(t, list)
			assert.True(t, errors.Is(err, interfaces.ErrRegistry))
		})
	}
}

func TestClient_FetchTokenList_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	cfg := config.DefaultTokenRegistryConfig()
	cfg.URL = url
	client := NewClient(cfg, zap.NewNop())

	_, err := client.FetchTokenList(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrRegistry))
}

func TestClient_FetchTokenList_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleTokenList))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchTokenList(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrRegistry))
}
