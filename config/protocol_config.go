package config

import "fmt"

// Page index modes
const (
	// IndexModePageLocal reads the entry at round-1 relative to the page start
	IndexModePageLocal = "page_local"
	// IndexModeGlobal reads the entry at round-1 from the fetched page as is
	IndexModeGlobal = "global"
)

// ProtocolConfig describes the structured products program and its token universe
type ProtocolConfig struct {
	ProgramID      string `yaml:"program_id"`
	RoundsPerPage  uint64 `yaml:"rounds_per_page"`
	StateSeed      string `yaml:"state_seed"`
	PricePageSeed  string `yaml:"price_page_seed"`
	PageIndexWidth int    `yaml:"page_index_width"` // Bytes used to encode the page index seed: 2, 4 or 8
	IndexMode      string `yaml:"index_mode"`

	UnderlyingMints        []string `yaml:"underlying_mints"`
	DerivativeTag          string   `yaml:"derivative_tag"`
	DerivativeSymbolPrefix string   `yaml:"derivative_symbol_prefix"`
}

func DefaultProtocolConfig() ProtocolConfig {
	return ProtocolConfig{
		RoundsPerPage:          128,
		StateSeed:              "state",
		PricePageSeed:          "price_per_share",
		PageIndexWidth:         8,
		IndexMode:              IndexModePageLocal,
		DerivativeTag:          "Katana",
		DerivativeSymbolPrefix: "kc",
	}
}

func (c ProtocolConfig) Validate() error {
	if c.ProgramID == "" {
		return fmt.Errorf("program_id is required")
	}
	if c.RoundsPerPage == 0 {
		return fmt.Errorf("rounds_per_page must be positive")
	}
	if c.StateSeed == "" || c.PricePageSeed == "" {
		return fmt.Errorf("state_seed and price_page_seed are required")
	}
	switch c.PageIndexWidth {
	case 2, 4, 8:
	default:
		return fmt.Errorf("page_index_width must be 2, 4 or 8, got %d", c.PageIndexWidth)
	}
	switch c.IndexMode {
	case IndexModePageLocal, IndexModeGlobal:
	default:
		return fmt.Errorf("unsupported index_mode %q", c.IndexMode)
	}
	if len(c.UnderlyingMints) == 0 {
		return fmt.Errorf("underlying_mints must not be empty")
	}
	return nil
}
