package price_list

import (
	"errors"
	"fmt"

	"github.com/status-im/katana-prices/interfaces"
)

// Skip reasons reported for tokens left out of the price list
const (
	KindDerivation          = "derivation"
	KindAccountNotFound     = "account_not_found"
	KindFetch               = "fetch"
	KindIndexOutOfRange     = "index_out_of_range"
	KindUnmatchedDerivative = "unmatched_derivative"
	KindOther               = "other"
)

// ItemError describes why one underlying token was skipped
type ItemError struct {
	Mint   string `json:"mint"`
	Symbol string `json:"symbol"`
	Kind   string `json:"kind"`
	Err    error  `json:"-"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s (%s): %s: %v", e.Symbol, e.Mint, e.Kind, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// Report is a price list together with the tokens that were skipped
type Report struct {
	Prices  []interfaces.PriceResult `json:"prices"`
	Skipped []ItemError              `json:"skipped,omitempty"`
}

func classify(err error) string {
	switch {
	case errors.Is(err, interfaces.ErrDerivation):
		return KindDerivation
	case errors.Is(err, interfaces.ErrAccountNotFound):
		return KindAccountNotFound
	case errors.Is(err, interfaces.ErrFetch):
		return KindFetch
	case errors.Is(err, interfaces.ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, interfaces.ErrUnmatchedDerivative):
		return KindUnmatchedDerivative
	default:
		return KindOther
	}
}
