package config

import "time"

type PriceListConfig struct {
	ThrottleDelay time.Duration `yaml:"throttle_delay"` // Pause between tokens when throttling is requested
}

func DefaultPriceListConfig() PriceListConfig {
	return PriceListConfig{
		ThrottleDelay: 300 * time.Millisecond,
	}
}
