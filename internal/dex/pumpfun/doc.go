// Package pumpfun implements the read side of the Pump.fun token-launch
// protocol on the Solana blockchain.
//
// This package provides:
// - A byte-exact codec for the global configuration account (GlobalAccount).
// - The initial constant-product buy quote used to size a purchase before
//   submitting a transaction (InitialBuyQuote).
// - Derivation of the global configuration PDA and fetching of the account
//   over RPC (DeriveGlobalAddress, FetchGlobalAccount).
//
// The codec and the pricing function are pure and safe for concurrent use;
// only FetchGlobalAccount touches the network. Decoding is strict: inputs
// shorter than GlobalAccountSize or with a malformed initialized flag are
// rejected, and decode(encode(x)) == x holds for every valid account.
//
// Usage example:
//
//	addr, _, err := pumpfun.DeriveGlobalAddress()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	global, err := pumpfun.FetchGlobalAccount(ctx, client, addr, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokensOut, err := global.InitialBuyQuote(1_000_000_000) // 1 SOL
//	if err != nil {
//	    log.Fatal(err)
//	}
package pumpfun
