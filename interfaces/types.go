package interfaces

// PriceInfo is the per-mint result of price resolution
type PriceInfo struct {
	Price     float64 `json:"price"`
	Round     uint64  `json:"round"`
	Mint      string  `json:"mint"`
	LPMint    string  `json:"lpMint"`
	QuoteMint string  `json:"-"`
}

// TokenMeta is an underlying token projected from the registry
type TokenMeta struct {
	Symbol      string `json:"symbol"`
	Address     string `json:"address"`
	CoingeckoID string `json:"coingeckoId,omitempty"`
}

// DerivativeTokenMeta is a protocol issued (LP) token projected from the registry
type DerivativeTokenMeta struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

// Universe is the token set a price list is built from
type Universe struct {
	Underlying  []TokenMeta
	Derivatives []DerivativeTokenMeta
}

// FindDerivative returns the derivative token with the given address
func (u Universe) FindDerivative(address string) (DerivativeTokenMeta, bool) {
	for _, d := range u.Derivatives {
		if d.Address == address {
			return d, true
		}
	}
	return DerivativeTokenMeta{}, false
}

// PriceResult is one entry of the covered call price list
type PriceResult struct {
	Symbol    string  `json:"symbol"`
	Address   string  `json:"address"`
	Price     float64 `json:"price"`
	Mint      string  `json:"mint"`
	Coingecko string  `json:"coingecko,omitempty"`
}
