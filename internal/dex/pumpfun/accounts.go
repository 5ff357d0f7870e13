// =============================
// File: internal/dex/pumpfun/accounts.go
// =============================
package pumpfun

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/one887777777/pumpfun-rs/internal/blockchain/solbc"
	"go.uber.org/zap"
)

// FetchGlobalAccount fetches and deserializes the global account data
func FetchGlobalAccount(ctx context.Context, client *solbc.Client, globalAddr solana.PublicKey, logger *zap.Logger) (*GlobalAccount, error) {
	logger.Debug("Fetching global account data", zap.String("address", globalAddr.String()))

	// Get account info from the blockchain
	accountInfo, err := client.GetAccountInfoWithRetry(ctx, globalAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get global account: %w", err)
	}

	if accountInfo == nil || accountInfo.Value == nil {
		return nil, fmt.Errorf("global account not found: %s", globalAddr.String())
	}

	// Make sure the account is owned by the Pump.fun program
	if !accountInfo.Value.Owner.Equals(ProgramID) {
		return nil, fmt.Errorf("global account has incorrect owner: expected %s, got %s",
			ProgramID.String(), accountInfo.Value.Owner.String())
	}

	data := accountInfo.Value.Data.GetBinary()
	logger.Debug("Global account data length", zap.Int("length", len(data)))

	account, err := DecodeGlobalAccount(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode global account: %w", err)
	}

	logger.Info("Global account data parsed successfully",
		zap.Bool("initialized", account.Initialized),
		zap.String("authority", account.Authority().String()),
		zap.String("fee_recipient", account.FeeRecipient().String()),
		zap.Uint64("fee_basis_points", account.FeeBasisPoints))

	return account, nil
}
