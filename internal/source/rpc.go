package source

import (
	"context"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/lugondev/solcodec/internal/common"
	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// AccountFetcher loads raw accounts. Missing accounts are nil entries.
type AccountFetcher interface {
	GetMultipleAccounts(ctx context.Context, keys []solana.PublicKey) ([]*rpc.Account, error)
}

// LogFetcher loads the log messages of a transaction.
type LogFetcher interface {
	GetTransactionLogs(ctx context.Context, sig solana.Signature) ([]string, error)
}

// AccountSource fetches accounts over RPC and frames their data as account
// payloads of the owning program.
type AccountSource struct {
	common.LoggerMixin

	fetcher AccountFetcher
	reg     *decoder.Registry
	keys    []solana.PublicKey

	fetched  bool
	accounts []*rpc.Account
	pos      int
	index    int
}

func NewAccountSource(fetcher AccountFetcher, reg *decoder.Registry, keys []solana.PublicKey) *AccountSource {
	return &AccountSource{
		LoggerMixin: common.NewLoggerMixin(),
		fetcher:     fetcher,
		reg:         reg,
		keys:        keys,
	}
}

// Next implements Source. All keys are fetched on the first call.
func (s *AccountSource) Next(ctx context.Context) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}
	if !s.fetched {
		accounts, err := s.fetcher.GetMultipleAccounts(ctx, s.keys)
		if err != nil {
			return Payload{}, apperrors.SourceFailed("rpc account", err)
		}
		if len(accounts) != len(s.keys) {
			return Payload{}, apperrors.SourceFailed("rpc account",
				fmt.Errorf("expected %d accounts, got %d", len(s.keys), len(accounts)))
		}
		s.accounts = accounts
		s.fetched = true
	}

	for s.pos < len(s.keys) {
		key, acc := s.keys[s.pos], s.accounts[s.pos]
		s.pos++

		if acc == nil || acc.Data == nil {
			s.GetLogger().Warn("account not found", "address", key.String())
			continue
		}

		p := Payload{
			Index:     s.index,
			Namespace: decoder.Accounts,
			Origin:    key.String(),
		}
		s.index++

		program, ok := s.reg.LookupID(acc.Owner)
		if !ok {
			p.Err = apperrors.ErrUnknownProgram.WithCause(fmt.Errorf("%s is owned by %s", key, acc.Owner))
			return p, nil
		}
		p.Program = program.Name
		p.Data = acc.Data.GetBinary()
		return p, nil
	}
	return Payload{}, io.EOF
}

// TransactionLogSource fetches transactions one at a time and emits the
// event payloads found in their logs.
type TransactionLogSource struct {
	common.LoggerMixin

	fetcher    LogFetcher
	reg        *decoder.Registry
	program    string
	signatures []solana.Signature

	pos     int
	index   int
	current *LogSource
}

// NewTransactionLogSource reads events of program from each signature. An
// empty program keeps every registered program's events.
func NewTransactionLogSource(fetcher LogFetcher, reg *decoder.Registry, program string, sigs []solana.Signature) *TransactionLogSource {
	return &TransactionLogSource{
		LoggerMixin: common.NewLoggerMixin(),
		fetcher:     fetcher,
		reg:         reg,
		program:     program,
		signatures:  sigs,
	}
}

// Next implements Source.
func (s *TransactionLogSource) Next(ctx context.Context) (Payload, error) {
	for {
		if s.current != nil {
			p, err := s.current.Next(ctx)
			if err == nil {
				s.index++
				return p, nil
			}
			if !isEOF(err) {
				return Payload{}, err
			}
			s.current = nil
		}

		if s.pos >= len(s.signatures) {
			return Payload{}, io.EOF
		}
		sig := s.signatures[s.pos]
		s.pos++

		logs, err := s.fetcher.GetTransactionLogs(ctx, sig)
		if err != nil {
			return Payload{}, apperrors.SourceFailed("rpc transaction", err)
		}
		current, err := NewLogSource(s.reg, s.program, logs, sig.String(), s.index)
		if err != nil {
			return Payload{}, err
		}
		s.GetLogger().Debug("fetched transaction", "signature", sig.String(), "payloads", current.Len())
		s.current = current
	}
}
