package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file
const (
	EnvRPCURL       = "KATANA_RPC_URL"
	EnvWallet       = "KATANA_WALLET"
	EnvProgramID    = "KATANA_PROGRAM_ID"
	EnvTokenListURL = "KATANA_TOKEN_LIST_URL"
)

type Config struct {
	RPC           RPCConfig           `yaml:"rpc"`
	WalletAddress string              `yaml:"wallet_address"`
	Protocol      ProtocolConfig      `yaml:"protocol"`
	TokenRegistry TokenRegistryConfig `yaml:"token_registry"`
	PriceList     PriceListConfig     `yaml:"price_list"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// Default returns a configuration with every optional field populated.
// Protocol.ProgramID and Protocol.UnderlyingMints have no defaults.
func Default() *Config {
	return &Config{
		RPC:           DefaultRPCConfig(),
		Protocol:      DefaultProtocolConfig(),
		TokenRegistry: DefaultTokenRegistryConfig(),
		PriceList:     DefaultPriceListConfig(),
		Logging:       DefaultLoggingConfig(),
	}
}

// LoadConfig reads a yaml file on top of Default()
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnvOverrides replaces config values with the ones set in the environment
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvRPCURL); v != "" {
		c.RPC.Endpoint = v
	}
	if v := os.Getenv(EnvWallet); v != "" {
		c.WalletAddress = v
	}
	if v := os.Getenv(EnvProgramID); v != "" {
		c.Protocol.ProgramID = v
	}
	if v := os.Getenv(EnvTokenListURL); v != "" {
		c.TokenRegistry.URL = v
	}
}

// Validate checks that the config can be used to build a price service
func (c *Config) Validate() error {
	if err := c.RPC.Validate(); err != nil {
		return fmt.Errorf("rpc: %w", err)
	}
	if err := c.Protocol.Validate(); err != nil {
		return fmt.Errorf("protocol: %w", err)
	}
	if err := c.TokenRegistry.Validate(); err != nil {
		return fmt.Errorf("token_registry: %w", err)
	}
	if c.PriceList.ThrottleDelay < 0 {
		return fmt.Errorf("price_list: throttle_delay must not be negative")
	}
	return nil
}
