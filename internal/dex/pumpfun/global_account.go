// =============================================
// File: internal/dex/pumpfun/global_account.go
// =============================================
package pumpfun

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// GlobalAccountSize is the exact byte length of the on-chain global
// configuration account.
const GlobalAccountSize = 8 + // discriminator
	1 + // initialized
	32 + // authority
	32 + // fee_recipient
	8 + // initial_virtual_token_reserves
	8 + // initial_virtual_sol_reserves
	8 + // initial_real_token_reserves
	8 + // token_total_supply
	8 // fee_basis_points

var (
	ErrAccountDataTooShort = errors.New("global account data too short")
	ErrInvalidBoolByte     = errors.New("initialized flag byte is not 0 or 1")
)

// GlobalAccount mirrors the byte layout of the Pump.fun global configuration
// account. The two key fields stay raw [32]byte so the struct keeps its fixed
// wire offsets; Authority and FeeRecipient expose the typed view.
type GlobalAccount struct {
	Discriminator               uint64
	Initialized                 bool
	AuthorityBytes              [32]byte
	FeeRecipientBytes           [32]byte
	InitialVirtualTokenReserves uint64
	InitialVirtualSolReserves   uint64
	InitialRealTokenReserves    uint64
	TokenTotalSupply            uint64
	FeeBasisPoints              uint64
}

// NewGlobalAccount builds a GlobalAccount from typed keys. Used by tests and
// simulations; on-chain data goes through DecodeGlobalAccount instead.
func NewGlobalAccount(
	discriminator uint64,
	initialized bool,
	authority, feeRecipient solana.PublicKey,
	initialVirtualTokenReserves, initialVirtualSolReserves, initialRealTokenReserves uint64,
	tokenTotalSupply, feeBasisPoints uint64,
) *GlobalAccount {
	return &GlobalAccount{
		Discriminator:               discriminator,
		Initialized:                 initialized,
		AuthorityBytes:              authority,
		FeeRecipientBytes:           feeRecipient,
		InitialVirtualTokenReserves: initialVirtualTokenReserves,
		InitialVirtualSolReserves:   initialVirtualSolReserves,
		InitialRealTokenReserves:    initialRealTokenReserves,
		TokenTotalSupply:            tokenTotalSupply,
		FeeBasisPoints:              feeBasisPoints,
	}
}

// Authority returns the typed authority public key.
func (g *GlobalAccount) Authority() solana.PublicKey {
	return solana.PublicKeyFromBytes(g.AuthorityBytes[:])
}

// FeeRecipient returns the typed fee recipient public key.
func (g *GlobalAccount) FeeRecipient() solana.PublicKey {
	return solana.PublicKeyFromBytes(g.FeeRecipientBytes[:])
}

// DecodeGlobalAccount deserializes the fixed little-endian layout of the
// global account. The decoder is strict: an initialized byte other than 0 or 1
// is rejected rather than coerced, so every decodable input is one Encode can
// reproduce. Trailing bytes beyond the fixed layout are ignored.
func DecodeGlobalAccount(data []byte) (*GlobalAccount, error) {
	if len(data) < GlobalAccountSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrAccountDataTooShort, len(data), GlobalAccountSize)
	}

	account := &GlobalAccount{}

	// Read discriminator (8 bytes)
	account.Discriminator = binary.LittleEndian.Uint64(data[0:8])

	// Read initialized flag (1 byte)
	switch data[8] {
	case 0:
		account.Initialized = false
	case 1:
		account.Initialized = true
	default:
		return nil, fmt.Errorf("%w: 0x%02x at offset 8", ErrInvalidBoolByte, data[8])
	}

	// Read authority and fee recipient public keys (32 bytes each)
	copy(account.AuthorityBytes[:], data[9:41])
	copy(account.FeeRecipientBytes[:], data[41:73])

	// Read uint64 values (each 8 bytes)
	offset := 73
	account.InitialVirtualTokenReserves = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	account.InitialVirtualSolReserves = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	account.InitialRealTokenReserves = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	account.TokenTotalSupply = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	account.FeeBasisPoints = binary.LittleEndian.Uint64(data[offset : offset+8])

	return account, nil
}

// Encode serializes the account into its canonical 113-byte on-chain layout.
func (g *GlobalAccount) Encode() []byte {
	data := make([]byte, GlobalAccountSize)

	binary.LittleEndian.PutUint64(data[0:8], g.Discriminator)

	if g.Initialized {
		data[8] = 1
	}

	copy(data[9:41], g.AuthorityBytes[:])
	copy(data[41:73], g.FeeRecipientBytes[:])

	offset := 73
	binary.LittleEndian.PutUint64(data[offset:offset+8], g.InitialVirtualTokenReserves)
	offset += 8

	binary.LittleEndian.PutUint64(data[offset:offset+8], g.InitialVirtualSolReserves)
	offset += 8

	binary.LittleEndian.PutUint64(data[offset:offset+8], g.InitialRealTokenReserves)
	offset += 8

	binary.LittleEndian.PutUint64(data[offset:offset+8], g.TokenTotalSupply)
	offset += 8

	binary.LittleEndian.PutUint64(data[offset:offset+8], g.FeeBasisPoints)

	return data
}
