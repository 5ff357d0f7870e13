// =============================================
// File: internal/dex/pumpfun/pricing.go
// =============================================
package pumpfun

import (
	"errors"

	"lukechampine.com/uint128"
)

// ErrQuoteUnderflow is returned when the requested SOL amount would subtract
// more tokens than the virtual pool holds.
var ErrQuoteUnderflow = errors.New("sol amount exceeds virtual pool capacity")

// InitialBuyQuote computes the token amount a buyer receives for solAmount
// lamports against the initial constant-product curve. The intermediate
// product needs 128 bits, and the +1 quotient bias floors the buyer
// allocation so the post-trade token reserve is never under-reported. The
// result is capped by the real token reserves actually available for sale.
func (g *GlobalAccount) InitialBuyQuote(solAmount uint64) (uint64, error) {
	if solAmount == 0 {
		return 0, nil
	}

	k := uint128.From64(g.InitialVirtualSolReserves).Mul64(g.InitialVirtualTokenReserves)
	newSolReserves := uint128.From64(g.InitialVirtualSolReserves).Add64(solAmount)
	quotient := k.Div(newSolReserves).Add64(1)

	virtualTokens := uint128.From64(g.InitialVirtualTokenReserves)
	if quotient.Cmp(virtualTokens) > 0 {
		return 0, ErrQuoteUnderflow
	}
	tokensOut := virtualTokens.Sub(quotient)

	if tokensOut.Cmp64(g.InitialRealTokenReserves) < 0 {
		return tokensOut.Lo, nil
	}
	return g.InitialRealTokenReserves, nil
}
