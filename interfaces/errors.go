package interfaces

import "errors"

var (
	// ErrDerivation is returned for malformed asset identities or failed address derivation
	ErrDerivation = errors.New("address derivation failed")

	// ErrAccountNotFound means the asset has no structured product account on chain
	ErrAccountNotFound = errors.New("account not found")

	// ErrFetch wraps transport failures and undecodable account data
	ErrFetch = errors.New("account fetch failed")

	// ErrIndexOutOfRange means the current round has no settled price entry
	ErrIndexOutOfRange = errors.New("price index out of range")

	// ErrRegistry is fatal for the price list: the token universe cannot be built
	ErrRegistry = errors.New("token registry unavailable")

	// ErrUnmatchedDerivative means no derivative token matches a resolved derivative mint
	ErrUnmatchedDerivative = errors.New("derivative token not found in registry")
)
