package pda

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/status-im/katana-prices/config"
	"github.com/status-im/katana-prices/interfaces"
)

// ParseMint decodes a base58 mint address
func ParseMint(mint string) (solana.PublicKey, error) {
	if mint == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: empty mint address", interfaces.ErrDerivation)
	}

	raw, err := base58.Decode(mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: mint %q is not base58: %v", interfaces.ErrDerivation, mint, err)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("%w: mint %q decodes to %d bytes, want %d",
			interfaces.ErrDerivation, mint, len(raw), solana.PublicKeyLength)
	}

	return solana.PublicKeyFromBytes(raw), nil
}

// Resolver derives the program addresses of a structured product
type Resolver struct {
	programID      solana.PublicKey
	stateSeed      []byte
	pricePageSeed  []byte
	pageIndexWidth int
}

// NewResolver creates a resolver from the protocol config
func NewResolver(cfg config.ProtocolConfig) (*Resolver, error) {
	programID, err := solana.PublicKeyFromBase58(cfg.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id %q: %w", cfg.ProgramID, err)
	}

	switch cfg.PageIndexWidth {
	case 2, 4, 8:
	default:
		return nil, fmt.Errorf("unsupported page index width %d", cfg.PageIndexWidth)
	}

	return &Resolver{
		programID:      programID,
		stateSeed:      []byte(cfg.StateSeed),
		pricePageSeed:  []byte(cfg.PricePageSeed),
		pageIndexWidth: cfg.PageIndexWidth,
	}, nil
}

// ProgramID returns the program the addresses are derived for
func (r *Resolver) ProgramID() solana.PublicKey {
	return r.programID
}

// StateAddress derives the state account of the structured product for mint
func (r *Resolver) StateAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress([][]byte{r.stateSeed, mint.Bytes()}, r.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: state address for %s: %v", interfaces.ErrDerivation, mint, err)
	}
	return address, nil
}

// PriceHistoryAddress derives the price-per-share page account for mint and page
func (r *Resolver) PriceHistoryAddress(mint solana.PublicKey, pageIndex uint64) (solana.PublicKey, error) {
	pageSeed, err := r.encodePageIndex(pageIndex)
	if err != nil {
		return solana.PublicKey{}, err
	}

	address, _, err := solana.FindProgramAddress([][]byte{r.pricePageSeed, mint.Bytes(), pageSeed}, r.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: price page %d address for %s: %v", interfaces.ErrDerivation, pageIndex, mint, err)
	}
	return address, nil
}

// DeriveStateAddress parses mint and derives its state account
func (r *Resolver) DeriveStateAddress(mint string) (solana.PublicKey, error) {
	key, err := ParseMint(mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return r.StateAddress(key)
}

// DerivePriceHistoryAddress parses mint and derives its price page account
func (r *Resolver) DerivePriceHistoryAddress(mint string, pageIndex uint64) (solana.PublicKey, error) {
	key, err := ParseMint(mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return r.PriceHistoryAddress(key, pageIndex)
}

// encodePageIndex serializes the page index little-endian with the configured width
func (r *Resolver) encodePageIndex(pageIndex uint64) ([]byte, error) {
	buf := make([]byte, r.pageIndexWidth)
	switch r.pageIndexWidth {
	case 2:
		if pageIndex > 0xFFFF {
			return nil, fmt.Errorf("%w: page index %d overflows u16", interfaces.ErrDerivation, pageIndex)
		}
		binary.LittleEndian.PutUint16(buf, uint16(pageIndex))
	case 4:
		if pageIndex > 0xFFFFFFFF {
			return nil, fmt.Errorf("%w: page index %d overflows u32", interfaces.ErrDerivation, pageIndex)
		}
		binary.LittleEndian.PutUint32(buf, uint32(pageIndex))
	default:
		binary.LittleEndian.PutUint64(buf, pageIndex)
	}
	return buf, nil
}
