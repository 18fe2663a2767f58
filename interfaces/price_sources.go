package interfaces

import "context"

//go:generate mockgen -destination=mocks/price_sources.go . PriceResolver,UniverseLoader

// PriceResolver resolves the current redemption price for an underlying mint
type PriceResolver interface {
	// ResolvePrice derives the protocol accounts for mint and reads the current round price
	ResolvePrice(ctx context.Context, mint string) (PriceInfo, error)
}

// UniverseLoader loads the underlying and derivative token sets
type UniverseLoader interface {
	// LoadUniverse fetches the registry once. Errors wrap ErrRegistry.
	LoadUniverse(ctx context.Context) (Universe, error)
}
