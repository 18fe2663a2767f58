package covered_call

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/onchain"
	"github.com/status-im/katana-prices/pda"
)

// AccountSource fetches decoded structured product accounts
type AccountSource interface {
	FetchState(ctx context.Context, address solana.PublicKey) (*onchain.StateRecord, error)
	FetchPricePage(ctx context.Context, address solana.PublicKey) (*onchain.PricePerSharePage, error)
}

// PriceResolver reads the current redemption price of covered call tokens
type PriceResolver struct {
	addresses     *pda.Resolver
	accounts      AccountSource
	roundsPerPage uint64
	indexMode     string
}

// NewPriceResolver creates a resolver. Each call reads fresh account data.
func NewPriceResolver(cfg config.ProtocolConfig, addresses *pda.Resolver, accounts AccountSource) *PriceResolver {
	return &PriceResolver{
		addresses:     addresses,
		accounts:      accounts,
		roundsPerPage: cfg.RoundsPerPage,
		indexMode:     cfg.IndexMode,
	}
}

// ResolvePrice returns the price of the current round for the underlying mint
func (r *PriceResolver) ResolvePrice(ctx context.Context, mint string) (interfaces.PriceInfo, error) {
	underlying, err := pda.ParseMint(mint)
	if err != nil {
		return interfaces.PriceInfo{}, err
	}

	stateAddress, err := r.addresses.StateAddress(underlying)
	if err != nil {
		return interfaces.PriceInfo{}, err
	}

	state, err := r.accounts.FetchState(ctx, stateAddress)
	if err != nil {
		return interfaces.PriceInfo{}, fmt.Errorf("state of %s: %w", mint, err)
	}

	location, err := LocateRound(state.Round, r.roundsPerPage, r.indexMode)
	if err != nil {
		return interfaces.PriceInfo{}, fmt.Errorf("state of %s: %w", mint, err)
	}

	pageAddress, err := r.addresses.PriceHistoryAddress(underlying, location.PageIndex)
	if err != nil {
		return interfaces.PriceInfo{}, err
	}

	page, err := r.accounts.FetchPricePage(ctx, pageAddress)
	if err != nil {
		return interfaces.PriceInfo{}, fmt.Errorf("price page %d of %s: %w", location.PageIndex, mint, err)
	}

	if location.Offset >= uint64(len(page.Prices)) {
		return interfaces.PriceInfo{}, fmt.Errorf("%w: round %d needs entry %d of page %d, page holds %d",
			interfaces.ErrIndexOutOfRange, state.Round, location.Offset, location.PageIndex, len(page.Prices))
	}

	return interfaces.PriceInfo{
		Price:     ScalePrice(page.Prices[location.Offset], state.Decimals),
		Round:     state.Round,
		Mint:      state.UnderlyingTokenMint.String(),
		LPMint:    state.DerivativeTokenMint.String(),
		QuoteMint: state.QuoteTokenMint.String(),
	}, nil
}

// ScalePrice converts an unscaled on-chain price to a float using the token decimals
func ScalePrice(raw uint64, decimals uint8) float64 {
	price, _ := decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals)).Float64()
	return price
}
