// internal/dex/pumpfun/pricing_test.go
package pumpfun

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curveAccount(virtualTokens, virtualSol, realTokens uint64) *GlobalAccount {
	return &GlobalAccount{
		Initialized:                 true,
		InitialVirtualTokenReserves: virtualTokens,
		InitialVirtualSolReserves:   virtualSol,
		InitialRealTokenReserves:    realTokens,
	}
}

func TestInitialBuyQuoteZeroAmount(t *testing.T) {
	account := curveAccount(1_000_000_000, 30_000_000_000, 800_000_000)

	tokensOut, err := account.InitialBuyQuote(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), tokensOut)
}

func TestInitialBuyQuoteKnownScenario(t *testing.T) {
	// product   = 30_000_000_000 * 1_000_000_000 = 3e19
	// newSol    = 31_000_000_000
	// quotient  = 3e19 / 31_000_000_000 + 1 = 967_741_936
	// tokensOut = 1_000_000_000 - 967_741_936 = 32_258_064
	account := curveAccount(1_000_000_000, 30_000_000_000, 800_000_000)

	tokensOut, err := account.InitialBuyQuote(1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(32_258_064), tokensOut)
}

func TestInitialBuyQuoteMonotonic(t *testing.T) {
	account := curveAccount(1_073_000_000_000_000, 30_000_000_000, 793_100_000_000_000)

	var prev uint64
	for _, amount := range []uint64{
		1, 1_000, 1_000_000, 500_000_000, 1_000_000_000,
		5_000_000_000, 50_000_000_000, 500_000_000_000, 5_000_000_000_000,
	} {
		tokensOut, err := account.InitialBuyQuote(amount)
		require.NoError(t, err, "amount %d", amount)
		assert.GreaterOrEqual(t, tokensOut, prev, "amount %d", amount)
		assert.LessOrEqual(t, tokensOut, account.InitialRealTokenReserves, "amount %d", amount)
		prev = tokensOut
	}
}

func TestInitialBuyQuoteCeiling(t *testing.T) {
	// Tiny real reserve: even a modest buy exhausts it.
	account := curveAccount(1_000_000_000, 30_000_000_000, 10)

	tokensOut, err := account.InitialBuyQuote(1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), tokensOut)
}

func TestInitialBuyQuoteUnderflow(t *testing.T) {
	// With zero virtual token reserves the biased quotient is 1, which would
	// underflow the unsigned subtraction.
	account := curveAccount(0, 30_000_000_000, 800_000_000)

	_, err := account.InitialBuyQuote(1)
	assert.ErrorIs(t, err, ErrQuoteUnderflow)
}

func TestInitialBuyQuoteMaxReserves(t *testing.T) {
	// Full 64-bit reserves exercise the 128-bit intermediates.
	account := curveAccount(math.MaxUint64, math.MaxUint64, math.MaxUint64)

	tokensOut, err := account.InitialBuyQuote(math.MaxUint64)
	require.NoError(t, err)
	// k = (2^64-1)^2, newSol = 2*(2^64-1), quotient = (2^64-1)/2 + 1 = 2^63,
	// tokensOut = (2^64-1) - 2^63 = 2^63 - 1.
	assert.Equal(t, uint64(math.MaxInt64), tokensOut)
}

func TestInitialBuyQuoteDeterministic(t *testing.T) {
	account := curveAccount(1_073_000_000_000_000, 30_000_000_000, 793_100_000_000_000)

	first, err := account.InitialBuyQuote(2_500_000_000)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := account.InitialBuyQuote(2_500_000_000)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
