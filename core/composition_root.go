package core

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/covered_call"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/onchain"
	"github.com/status-im/katana-prices/pda"
	"github.com/status-im/katana-prices/price_list"
	"github.com/status-im/katana-prices/token_registry"
)

// Components holds the wired services behind a PriceService
type Components struct {
	Addresses *pda.Resolver
	Resolver  *covered_call.PriceResolver
	Universe  interfaces.UniverseLoader
	PriceList *price_list.Service
}

// Setup creates all services, using the dependency overrides from opts where set
func Setup(cfg *config.Config, logger *zap.Logger, opts *options) (*Components, error) {
	// Create address resolver
	addresses, err := pda.NewResolver(cfg.Protocol)
	if err != nil {
		return nil, fmt.Errorf("creating address resolver: %w", err)
	}

	// Create on-chain account source
	accounts := opts.accounts
	if accounts == nil {
		accounts = onchain.NewClient(cfg.RPC, addresses.ProgramID(), logger)
	}

	resolver := covered_call.NewPriceResolver(cfg.Protocol, addresses, accounts)

	// Create token universe loader backed by the token list
	universe := opts.universe
	if universe == nil {
		listClient := token_registry.NewClient(cfg.TokenRegistry, logger)
		universe = token_registry.NewLoader(listClient, cfg.TokenRegistry, cfg.Protocol, logger)
	}

	clk := opts.clock
	if clk == nil {
		clk = clock.New()
	}

	priceList := price_list.NewService(cfg.PriceList, universe, resolver, clk, logger)

	return &Components{
		Addresses: addresses,
		Resolver:  resolver,
		Universe:  universe,
		PriceList: priceList,
	}, nil
}
