package token_registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/metrics"
)

// ListSource provides the raw token list
type ListSource interface {
	FetchTokenList(ctx context.Context) (*TokenList, error)
}

// Client downloads the token list document over HTTP
type Client struct {
	url           string
	httpClient    *http.Client
	metricsWriter *metrics.MetricsWriter
	logger        *zap.Logger
}

// NewClient creates a token list client
func NewClient(cfg config.TokenRegistryConfig, logger *zap.Logger) *Client {
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceRegistry),
		logger:        logger.Named("token_registry"),
	}
}

// FetchTokenList retrieves and parses the token list
func (c *Client) FetchTokenList(ctx context.Context) (*TokenList, error) {
	body, err := c.executeRequest(ctx)
	if err != nil {
		return nil, err
	}

	var tokenList TokenList
	if err := json.Unmarshal(body, &tokenList); err != nil {
		c.logger.Error("Error parsing token list", zap.String("url", c.url), zap.Error(err))
		return nil, fmt.Errorf("%w: error unmarshaling token list: %v", interfaces.ErrRegistry, err)
	}

	c.logger.Debug("Fetched token list",
		zap.String("name", tokenList.Name),
		zap.Int("tokens", len(tokenList.Tokens)))

	return &tokenList, nil
}

func (c *Client) executeRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: error creating request: %v", interfaces.ErrRegistry, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metricsWriter.RecordRequestLatency("token_list", time.Since(start))
	if err != nil {
		c.metricsWriter.RecordRequest(metrics.StatusError)
		return nil, fmt.Errorf("%w: error fetching token list: %v", interfaces.ErrRegistry, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metricsWriter.RecordRequest(metrics.StatusError)
		return nil, fmt.Errorf("%w: unexpected status code: %d", interfaces.ErrRegistry, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metricsWriter.RecordRequest(metrics.StatusError)
		return nil, fmt.Errorf("%w: error reading response body: %v", interfaces.ErrRegistry, err)
	}

	c.metricsWriter.RecordRequest(metrics.StatusSuccess)
	return body, nil
}
