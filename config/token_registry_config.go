package config

import (
	"fmt"
	"time"
)

// jsDelivr mirror of the solana-labs token list
const DefaultTokenListURL = "https://cdn.jsdelivr.net/gh/solana-labs/token-list@latest/src/tokens/solana.tokenlist.json"

type TokenRegistryConfig struct {
	URL            string        `yaml:"url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	ChainID        int           `yaml:"chain_id"` // 0 keeps tokens of every cluster
}

func DefaultTokenRegistryConfig() TokenRegistryConfig {
	return TokenRegistryConfig{
		URL:            DefaultTokenListURL,
		RequestTimeout: 30 * time.Second,
	}
}

func (c TokenRegistryConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	return nil
}
