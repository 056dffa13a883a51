// Package solana wraps the Solana JSON-RPC calls used to fetch raw account
// data and transaction logs.
package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// MaxAccountsPerRequest is the getMultipleAccounts limit enforced by RPC nodes.
const MaxAccountsPerRequest = 100

// Client wraps the Solana RPC client
type Client struct {
	rpc        *rpc.Client
	timeout    time.Duration
	commitment rpc.CommitmentType
}

// NewClient creates a new Solana client. A zero timeout leaves request
// deadlines to the caller's context.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		rpc:        rpc.New(endpoint),
		timeout:    timeout,
		commitment: rpc.CommitmentConfirmed,
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// GetMultipleAccounts returns one entry per key, in order. Entries are nil for
// accounts that do not exist. Keys are fetched in chunks of
// MaxAccountsPerRequest.
func (c *Client) GetMultipleAccounts(ctx context.Context, keys []solana.PublicKey) ([]*rpc.Account, error) {
	out := make([]*rpc.Account, 0, len(keys))
	for start := 0; start < len(keys); start += MaxAccountsPerRequest {
		end := min(start+MaxAccountsPerRequest, len(keys))

		reqCtx, cancel := c.withTimeout(ctx)
		result, err := c.rpc.GetMultipleAccountsWithOpts(reqCtx, keys[start:end], &rpc.GetMultipleAccountsOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment,
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to get accounts: %w", err)
		}
		if len(result.Value) != end-start {
			return nil, fmt.Errorf("failed to get accounts: expected %d entries, got %d", end-start, len(result.Value))
		}
		out = append(out, result.Value...)
	}
	return out, nil
}

// GetTransactionLogs returns the log messages of a confirmed transaction.
func (c *Client) GetTransactionLogs(ctx context.Context, sig solana.Signature) ([]string, error) {
	reqCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	maxVersion := uint64(0)
	result, err := c.rpc.GetTransaction(reqCtx, sig, &rpc.GetTransactionOpts{
		Commitment:                     c.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if result == nil || result.Meta == nil {
		return nil, fmt.Errorf("transaction %s has no metadata", sig)
	}
	return result.Meta.LogMessages, nil
}
