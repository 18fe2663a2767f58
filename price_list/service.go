package price_list

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
	"github.com/status-im/katana-prices/metrics"
)

// Service builds the covered call price list from the token universe
type Service struct {
	universeLoader interfaces.UniverseLoader
	resolver       interfaces.PriceResolver
	clock          clock.Clock
	throttleDelay  time.Duration
	metricsWriter  *metrics.MetricsWriter
	logger         *zap.Logger
}

func NewService(
	cfg config.PriceListConfig,
	universeLoader interfaces.UniverseLoader,
	resolver interfaces.PriceResolver,
	clk clock.Clock,
	logger *zap.Logger,
) *Service {
	if clk == nil {
		clk = clock.New()
	}
	return &Service{
		universeLoader: universeLoader,
		resolver:       resolver,
		clock:          clk,
		throttleDelay:  cfg.ThrottleDelay,
		metricsWriter:  metrics.NewMetricsWriter(metrics.ServicePriceList),
		logger:         logger.Named("price_list"),
	}
}

// BuildPriceList returns one entry per underlying token whose price resolved
// and whose derivative token is listed. Per-token failures are logged and
// skipped; only a registry failure or context cancellation fails the call.
func (s *Service) BuildPriceList(ctx context.Context, throttle bool) ([]interfaces.PriceResult, error) {
	report, err := s.BuildReport(ctx, throttle)
	if err != nil {
		return nil, err
	}
	return report.Prices, nil
}

// BuildReport is BuildPriceList that also returns the skipped tokens
func (s *Service) BuildReport(ctx context.Context, throttle bool) (*Report, error) {
	defer s.metricsWriter.TrackDataFetchCycle()()

	universe, err := s.universeLoader.LoadUniverse(ctx)
	if err != nil {
		s.logger.Error("Failed to load token universe", zap.Error(err))
		return nil, fmt.Errorf("loading token universe: %w", err)
	}

	report := &Report{Prices: make([]interfaces.PriceResult, 0, len(universe.Underlying))}
	listed := make(map[string]struct{}, len(universe.Underlying))
	resolved := 0

	for _, token := range universe.Underlying {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := listed[token.Address]; ok {
			continue
		}

		if throttle && resolved > 0 {
			if err := s.wait(ctx); err != nil {
				return nil, err
			}
		}
		resolved++

		s.logger.Info("Getting info for", zap.String("symbol", token.Symbol), zap.String("mint", token.Address))

		info, err := s.resolver.ResolvePrice(ctx, token.Address)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.skip(report, token, err)
			continue
		}

		derivative, ok := universe.FindDerivative(info.LPMint)
		if !ok {
			s.skip(report, token, fmt.Errorf("%w: %s", interfaces.ErrUnmatchedDerivative, info.LPMint))
			continue
		}

		report.Prices = append(report.Prices, interfaces.PriceResult{
			Symbol:    derivative.Symbol,
			Address:   derivative.Address,
			Price:     info.Price,
			Mint:      token.Address,
			Coingecko: token.CoingeckoID,
		})
		listed[token.Address] = struct{}{}
	}

	s.metricsWriter.RecordResultSize(len(report.Prices))
	s.logger.Info("Built covered call price list",
		zap.Int("prices", len(report.Prices)),
		zap.Int("skipped", len(report.Skipped)))

	return report, nil
}

func (s *Service) skip(report *Report, token interfaces.TokenMeta, err error) {
	item := ItemError{
		Mint:   token.Address,
		Symbol: token.Symbol,
		Kind:   classify(err),
		Err:    err,
	}
	report.Skipped = append(report.Skipped, item)
	s.metricsWriter.RecordSkippedItem(item.Kind)

	fields := []zap.Field{
		zap.String("symbol", token.Symbol),
		zap.String("mint", token.Address),
		zap.String("kind", item.Kind),
		zap.Error(err),
	}
	if item.Kind == KindUnmatchedDerivative {
		s.logger.Warn("LP token didn't match", fields...)
		return
	}
	s.logger.Error("Failed to resolve price", fields...)
}

// wait pauses for the throttle delay on the service clock
func (s *Service) wait(ctx context.Context) error {
	if s.throttleDelay <= 0 {
		return nil
	}

	timer := s.clock.Timer(s.throttleDelay)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
