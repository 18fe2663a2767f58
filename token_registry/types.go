package token_registry

// TokenExtensions holds the optional extension fields of a token list entry
type TokenExtensions struct {
	CoingeckoID string `json:"coingeckoId,omitempty"`
	Website     string `json:"website,omitempty"`
}

// TokenInfo represents one entry of the SPL token list
type TokenInfo struct {
	ChainID    int             `json:"chainId"`
	Address    string          `json:"address"`
	Symbol     string          `json:"symbol"`
	Name       string          `json:"name"`
	Decimals   int             `json:"decimals"`
	LogoURI    string          `json:"logoURI,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Extensions TokenExtensions `json:"extensions,omitempty"`
}

// HasTag reports whether the token carries the tag
func (t TokenInfo) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// TokenListVersion represents the version information of a token list
type TokenListVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// TokenList represents the complete token list document
type TokenList struct {
	Name      string           `json:"name"`
	LogoURI   string           `json:"logoURI,omitempty"`
	Keywords  []string         `json:"keywords,omitempty"`
	Version   TokenListVersion `json:"version"`
	Tokens    []TokenInfo      `json:"tokens"`
	Timestamp string           `json:"timestamp,omitempty"`
}
