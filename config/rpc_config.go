package config

import (
	"fmt"
	"time"
)

const (
	// Public mainnet-beta endpoint, used when nothing else is configured
	DefaultRPCEndpoint = "https://api.mainnet-beta.solana.com"
	DefaultCommitment  = "confirmed"
)

// RPCConfig configures the Solana JSON-RPC connection
type RPCConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	Commitment     string        `yaml:"commitment"`      // processed, confirmed or finalized
	RequestTimeout time.Duration `yaml:"request_timeout"` // Timeout for a single account fetch
	RateLimit      RateLimit     `yaml:"rate_limit"`
}

// RateLimit represents a simple rps + burst pair. Zero rps disables limiting.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func DefaultRPCConfig() RPCConfig {
	return RPCConfig{
		Endpoint:       DefaultRPCEndpoint,
		Commitment:     DefaultCommitment,
		RequestTimeout: 10 * time.Second,
	}
}

func (c RPCConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	switch c.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return fmt.Errorf("unsupported commitment %q", c.Commitment)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must not be negative")
	}
	return nil
}
