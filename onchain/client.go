package onchain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/metrics"
)

const (
	operationGetState     = "get_state"
	operationGetPricePage = "get_price_page"
)

// Client reads structured product accounts over Solana JSON-RPC
type Client struct {
	rpcClient     *rpc.Client
	programID     solana.PublicKey
	commitment    rpc.CommitmentType
	timeout       time.Duration
	limiter       *rate.Limiter
	metricsWriter *metrics.MetricsWriter
	logger        *zap.Logger
}

// NewClient creates a read-only account client for the given program
func NewClient(cfg config.RPCConfig, programID solana.PublicKey, logger *zap.Logger) *Client {
	return &Client{
		rpcClient:     rpc.New(cfg.Endpoint),
		programID:     programID,
		commitment:    rpc.CommitmentType(cfg.Commitment),
		timeout:       cfg.RequestTimeout,
		limiter:       newLimiter(cfg.RateLimit),
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceRPC),
		logger:        logger.Named("onchain"),
	}
}

// FetchState fetches and decodes the State account at address
func (c *Client) FetchState(ctx context.Context, address solana.PublicKey) (*StateRecord, error) {
	data, err := c.fetchAccountData(ctx, address, operationGetState)
	if err != nil {
		return nil, err
	}
	return DecodeState(data)
}

// FetchPricePage fetches and decodes the PricePerSharePage account at address
func (c *Client) FetchPricePage(ctx context.Context, address solana.PublicKey) (*PricePerSharePage, error) {
	data, err := c.fetchAccountData(ctx, address, operationGetPricePage)
	if err != nil {
		return nil, err
	}
	return DecodePricePerSharePage(data)
}

func (c *Client) fetchAccountData(ctx context.Context, address solana.PublicKey, operation string) ([]byte, error) {
	if err := waitLimiter(ctx, c.limiter, c.metricsWriter); err != nil {
		c.metricsWriter.RecordRequest(metrics.StatusRateLimited)
		return nil, fmt.Errorf("%w: rate limiter wait failed: %v", interfaces.ErrFetch, err)
	}

	rCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		rCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	info, err := c.rpcClient.GetAccountInfoWithOpts(rCtx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.commitment,
	})
	c.metricsWriter.RecordRequestLatency(operation, time.Since(start))

	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			c.metricsWriter.RecordRequest(metrics.StatusNotFound)
			return nil, fmt.Errorf("%w: %s", interfaces.ErrAccountNotFound, address)
		}

		c.metricsWriter.RecordRequest(metrics.StatusError)
		fields := []zap.Field{
			zap.Error(err),
			zap.String("operation", operation),
			zap.Stringer("account", address),
		}
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			fields = append(fields, zap.Int("rpc_code", rpcErr.Code))
		}
		c.logger.Debug("failed to request account", fields...)
		return nil, fmt.Errorf("%w: %s %s: %v", interfaces.ErrFetch, operation, address, err)
	}

	if info == nil || info.Value == nil {
		c.metricsWriter.RecordRequest(metrics.StatusNotFound)
		return nil, fmt.Errorf("%w: %s", interfaces.ErrAccountNotFound, address)
	}

	if !info.Value.Owner.Equals(c.programID) {
		c.metricsWriter.RecordRequest(metrics.StatusError)
		return nil, fmt.Errorf("%w: account %s is owned by %s, not %s",
			interfaces.ErrFetch, address, info.Value.Owner, c.programID)
	}

	c.metricsWriter.RecordRequest(metrics.StatusSuccess)
	return info.Value.Data.GetBinary(), nil
}
