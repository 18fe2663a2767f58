package onchain

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"

	"github.com/status-im/katana-prices/interfaces"
)

// Anchor account names
const (
	StateAccountName             = "State"
	PricePerSharePageAccountName = "PricePerSharePage"
)

// DiscriminatorLength is the size of the anchor account type prefix
const DiscriminatorLength = 8

// StateRecord is the per-asset structured product state
type StateRecord struct {
	UnderlyingTokenMint solana.PublicKey
	DerivativeTokenMint solana.PublicKey
	QuoteTokenMint      solana.PublicKey
	Round               uint64
	Decimals            uint8
}

// PricePerSharePage holds the unscaled price of consecutive rounds
type PricePerSharePage struct {
	Prices []uint64
}

// AccountDiscriminator returns the anchor discriminator for an account type
func AccountDiscriminator(name string) [DiscriminatorLength]byte {
	var d [DiscriminatorLength]byte
	sum := sha256.Sum256([]byte("account:" + name))
	copy(d[:], sum[:DiscriminatorLength])
	return d
}

// DecodeState decodes a State account
func DecodeState(data []byte) (*StateRecord, error) {
	var state StateRecord
	if err := decodeAnchorAccount(StateAccountName, data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// DecodePricePerSharePage decodes a PricePerSharePage account
func DecodePricePerSharePage(data []byte) (*PricePerSharePage, error) {
	// Vec<u64>: u32 length prefix, then 8 bytes per entry
	if len(data) >= DiscriminatorLength+4 {
		n := binary.LittleEndian.Uint32(data[DiscriminatorLength:])
		if uint64(len(data)-DiscriminatorLength-4) < uint64(n)*8 {
			return nil, fmt.Errorf("%w: %s account declares %d prices but holds %d bytes",
				interfaces.ErrFetch, PricePerSharePageAccountName, n, len(data)-DiscriminatorLength-4)
		}
	}

	var page PricePerSharePage
	if err := decodeAnchorAccount(PricePerSharePageAccountName, data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// EncodeAccount serializes v with the anchor discriminator of name
func EncodeAccount(name string, v interface{}) ([]byte, error) {
	body, err := borsh.Serialize(v)
	if err != nil {
		return nil, err
	}
	d := AccountDiscriminator(name)
	return append(d[:], body...), nil
}

func decodeAnchorAccount(name string, data []byte, out interface{}) error {
	if len(data) < DiscriminatorLength {
		return fmt.Errorf("%w: %s account data too short (%d bytes)", interfaces.ErrFetch, name, len(data))
	}

	want := AccountDiscriminator(name)
	if !bytes.Equal(data[:DiscriminatorLength], want[:]) {
		return fmt.Errorf("%w: data is not a %s account", interfaces.ErrFetch, name)
	}

	if err := borsh.Deserialize(out, data[DiscriminatorLength:]); err != nil {
		return fmt.Errorf("%w: failed to decode %s account: %v", interfaces.ErrFetch, name, err)
	}
	return nil
}
