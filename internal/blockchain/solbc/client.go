// internal/blockchain/solbc/client.go
package solbc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// Client is a thin adapter over the solana-go RPC client.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	maxTries   uint
	retryDelay time.Duration
	logger     *zap.Logger
}

var (
	ErrAccountNotFound = errors.New("account not found")
)

// IsAccountNotFoundError reports whether err is a "not found" condition.
func IsAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAccountNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithRetryPolicy overrides the retry count and the initial retry delay.
func WithRetryPolicy(maxTries uint, retryDelay time.Duration) Option {
	return func(c *Client) {
		if maxTries > 0 {
			c.maxTries = maxTries
		}
		if retryDelay > 0 {
			c.retryDelay = retryDelay
		}
	}
}

// NewClient creates a new client, taking the RPC URL, commitment level and
// logger through dependency injection.
func NewClient(rpcURL string, commitment rpc.CommitmentType, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		rpc:        rpc.New(rpcURL),
		commitment: commitment,
		maxTries:   3,
		retryDelay: 500 * time.Millisecond,
		logger:     logger.Named("solbc-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAccountInfo fetches account info at the client's commitment level.
func (c *Client) GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	result, err := c.rpc.GetAccountInfoWithOpts(ctx, pubkey, &rpc.GetAccountInfoOpts{
		Commitment: c.commitment,
	})
	if err != nil {
		c.logger.Debug("GetAccountInfo error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}

// GetAccountInfoWithRetry fetches account info with exponential backoff.
// "Not found" is treated as permanent; retrying cannot make the account
// appear.
func (c *Client) GetAccountInfoWithRetry(ctx context.Context, pubkey solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	backoffPolicy := backoff.NewExponentialBackOff()
	backoffPolicy.InitialInterval = c.retryDelay
	backoffPolicy.MaxInterval = c.retryDelay * 10

	notify := func(err error, duration time.Duration) {
		c.logger.Info("Retrying account fetch after error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err),
			zap.Duration("backoff", duration))
	}

	operation := func() (*rpc.GetAccountInfoResult, error) {
		result, err := c.GetAccountInfo(ctx, pubkey)
		if err != nil {
			if IsAccountNotFoundError(err) {
				return nil, backoff.Permanent(ErrAccountNotFound)
			}
			return nil, err
		}
		return result, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoffPolicy),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(notify))
}

// GetSlot returns the current slot at the client's commitment level.
func (c *Client) GetSlot(ctx context.Context) (uint64, error) {
	slot, err := c.rpc.GetSlot(ctx, c.commitment)
	if err != nil {
		c.logger.Debug("GetSlot error", zap.Error(err))
		return 0, err
	}
	return slot, nil
}
