package token_registry

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/metrics"
)

// Loader projects the token list onto the tokens the protocol prices
type Loader struct {
	source           ListSource
	chainID          int
	underlyingMints  map[string]struct{}
	derivativeTag    string
	derivativePrefix string
	metricsWriter    *metrics.MetricsWriter
	logger           *zap.Logger
}

// NewLoader creates a universe loader on top of a token list source
func NewLoader(source ListSource, registryCfg config.TokenRegistryConfig, protocolCfg config.ProtocolConfig, logger *zap.Logger) *Loader {
	mints := make(map[string]struct{}, len(protocolCfg.UnderlyingMints))
	for _, mint := range protocolCfg.UnderlyingMints {
		mints[mint] = struct{}{}
	}

	return &Loader{
		source:           source,
		chainID:          registryCfg.ChainID,
		underlyingMints:  mints,
		derivativeTag:    protocolCfg.DerivativeTag,
		derivativePrefix: protocolCfg.DerivativeSymbolPrefix,
		metricsWriter:    metrics.NewMetricsWriter(metrics.ServiceRegistry),
		logger:           logger.Named("token_registry"),
	}
}

// LoadUniverse fetches the token list and returns the underlying and derivative
// token sets, each deduplicated in registry order
func (l *Loader) LoadUniverse(ctx context.Context) (interfaces.Universe, error) {
	tokenList, err := l.source.FetchTokenList(ctx)
	if err != nil {
		return interfaces.Universe{}, err
	}

	universe := Project(tokenList.Tokens, l.chainID, l.underlyingMints, l.derivativeTag, l.derivativePrefix)
	l.metricsWriter.RecordResultSize(len(universe.Underlying))

	l.logger.Info("Loaded token universe",
		zap.Int("registry_tokens", len(tokenList.Tokens)),
		zap.Int("underlying", len(universe.Underlying)),
		zap.Int("derivatives", len(universe.Derivatives)))

	return universe, nil
}

// Project filters registry entries into a Universe. A chainID of 0 keeps
// entries of every cluster.
func Project(tokens []TokenInfo, chainID int, underlyingMints map[string]struct{}, tag, prefix string) interfaces.Universe {
	var universe interfaces.Universe
	seenUnderlying := make(map[interfaces.TokenMeta]struct{})
	seenDerivative := make(map[interfaces.DerivativeTokenMeta]struct{})

	for _, token := range tokens {
		if token.Address == "" {
			continue
		}
		if chainID != 0 && token.ChainID != chainID {
			continue
		}

		if _, ok := underlyingMints[token.Address]; ok {
			meta := interfaces.TokenMeta{
				Symbol:      token.Symbol,
				Address:     token.Address,
				CoingeckoID: token.Extensions.CoingeckoID,
			}
			if _, dup := seenUnderlying[meta]; !dup {
				seenUnderlying[meta] = struct{}{}
				universe.Underlying = append(universe.Underlying, meta)
			}
		}

		if token.HasTag(tag) && strings.HasPrefix(token.Symbol, prefix) {
			meta := interfaces.DerivativeTokenMeta{
				Symbol:  token.Symbol,
				Address: token.Address,
			}
			if _, dup := seenDerivative[meta]; !dup {
				seenDerivative[meta] = struct{}{}
				universe.Derivatives = append(universe.Derivatives, meta)
			}
		}
	}

	return universe
}
