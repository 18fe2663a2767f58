package core

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/covered_call"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/price_list"
)

type options struct {
	endpoint string
	identity *solana.PublicKey
	clock    clock.Clock
	accounts covered_call.AccountSource
	universe interfaces.UniverseLoader
}

// Option overrides a PriceService dependency
type Option func(*options)

// WithEndpoint sets the RPC endpoint, taking precedence over the config
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithIdentity sets the read-only wallet identity
func WithIdentity(identity solana.PublicKey) Option {
	return func(o *options) { o.identity = &identity }
}

// WithClock sets the clock used for throttling
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// WithAccountSource replaces the RPC backed account source
func WithAccountSource(accounts covered_call.AccountSource) Option {
	return func(o *options) { o.accounts = accounts }
}

// WithUniverseLoader replaces the token list backed universe loader
func WithUniverseLoader(universe interfaces.UniverseLoader) Option {
	return func(o *options) { o.universe = universe }
}

// PriceService answers covered call price queries for one RPC endpoint
type PriceService struct {
	endpoint  string
	identity  solana.PublicKey
	resolver  interfaces.PriceResolver
	priceList *price_list.Service
	logger    *zap.Logger
}

// NewPriceService validates cfg and builds a ready to use service. Without a
// configured wallet a fresh random identity is used; it never signs anything.
func NewPriceService(cfg *config.Config, logger *zap.Logger, opts ...Option) (*PriceService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &options{endpoint: cfg.RPC.Endpoint}
	for _, opt := range opts {
		opt(o)
	}
	if o.endpoint == "" {
		o.endpoint = config.DefaultRPCEndpoint
	}

	effective := *cfg
	effective.RPC.Endpoint = o.endpoint
	if err := effective.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	identity, err := resolveIdentity(effective.WalletAddress, o.identity)
	if err != nil {
		return nil, err
	}

	components, err := Setup(&effective, logger, o)
	if err != nil {
		return nil, err
	}

	logger.Info("Price service ready",
		zap.String("endpoint", o.endpoint),
		zap.String("identity", identity.String()),
		zap.String("program_id", components.Addresses.ProgramID().String()))

	return &PriceService{
		endpoint:  o.endpoint,
		identity:  identity,
		resolver:  components.Resolver,
		priceList: components.PriceList,
		logger:    logger,
	}, nil
}

func resolveIdentity(walletAddress string, override *solana.PublicKey) (solana.PublicKey, error) {
	if override != nil {
		return *override, nil
	}
	if walletAddress == "" {
		return solana.NewWallet().PublicKey(), nil
	}
	identity, err := solana.PublicKeyFromBase58(walletAddress)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: wallet address %q: %v", interfaces.ErrDerivation, walletAddress, err)
	}
	return identity, nil
}

// Endpoint returns the RPC endpoint in use
func (s *PriceService) Endpoint() string {
	return s.endpoint
}

// Identity returns the read-only wallet identity
func (s *PriceService) Identity() solana.PublicKey {
	return s.identity
}

// GetPriceByUnderlyingMint resolves the current price of one underlying asset
func (s *PriceService) GetPriceByUnderlyingMint(ctx context.Context, mint string) (interfaces.PriceInfo, error) {
	return s.resolver.ResolvePrice(ctx, mint)
}

// GetCoveredCallPriceList builds the price list. withDelay pauses between
// tokens to stay under public RPC rate limits.
func (s *PriceService) GetCoveredCallPriceList(ctx context.Context, withDelay bool) ([]interfaces.PriceResult, error) {
	return s.priceList.BuildPriceList(ctx, withDelay)
}

// GetCoveredCallReport is GetCoveredCallPriceList with the skipped tokens attached
func (s *PriceService) GetCoveredCallReport(ctx context.Context, withDelay bool) (*price_list.Report, error) {
	return s.priceList.BuildReport(ctx, withDelay)
}
