package onchain

import (
	"context"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/metrics"
)

// newLimiter returns nil when rate limiting is disabled
func newLimiter(cfg config.RateLimit) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}

	limit := rate.Limit(cfg.RequestsPerSecond)
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurstForLimit(limit)
	}
	return rate.NewLimiter(limit, burst)
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}

// waitLimiter blocks until the limiter allows one more request
func waitLimiter(ctx context.Context, limiter *rate.Limiter, metricsWriter *metrics.MetricsWriter) error {
	if limiter == nil {
		return nil
	}

	start := time.Now()
	err := limiter.Wait(ctx)
	metricsWriter.RecordRateLimitWait(time.Since(start))
	return err
}
