package source

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs"
	"github.com/lugondev/solcodec/pkg/programs/pumpfun"
	"github.com/lugondev/solcodec/pkg/programs/raydiumcpmm"
)

var deadbeef = []byte{0xde, 0xad, 0xbe, 0xef}

func TestEncodingDecode(t *testing.T) {
	tests := []struct {
		enc  Encoding
		text string
	}{
		{EncodingHex, "deadbeef"},
		{EncodingHex, "0xdeadbeef"},
		{EncodingBase64, "3q2+7w=="},
		{EncodingBase58, "6h8cQN"},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc)+"/"+tt.text, func(t *testing.T) {
			got, err := tt.enc.Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(got, deadbeef) {
				t.Errorf("expected %x, got %x", deadbeef, got)
			}
		})
	}

	for _, bad := range []struct {
		enc  Encoding
		text string
	}{
		{EncodingHex, "xyz"},
		{EncodingBase64, "!!"},
		{EncodingBase58, "0OIl"},
	} {
		if _, err := bad.enc.Decode(bad.text); err == nil {
			t.Errorf("expected %s to reject %q", bad.enc, bad.text)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	if e, err := ParseEncoding(" Base58 "); err != nil || e != EncodingBase58 {
		t.Errorf("expected base58, got %q, %v", e, err)
	}
	if _, err := ParseEncoding("base32"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLineSource(t *testing.T) {
	input := strings.Join([]string{
		"# header",
		"deadbeef",
		"",
		"events: 0102",
		"zz",
		"widgets:00",
	}, "\n")

	src := NewLineSource(strings.NewReader(input), EncodingHex, "pumpfun", decoder.Accounts)
	got, err := Drain(context.Background(), src)
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 payloads, got %d", len(got))
	}

	tests := []struct {
		name   string
		p      Payload
		origin string
		ns     decoder.Namespace
		data   []byte
		bad    bool
	}{
		{"plain", got[0], "line 2", decoder.Accounts, deadbeef, false},
		{"prefixed", got[1], "line 4", decoder.Events, []byte{1, 2}, false},
		{"bad hex", got[2], "line 5", decoder.Accounts, nil, true},
		{"bad prefix", got[3], "line 6", decoder.Accounts, nil, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Index != i {
				t.Errorf("expected index %d, got %d", i, tt.p.Index)
			}
			if tt.p.Origin != tt.origin {
				t.Errorf("expected origin %q, got %q", tt.origin, tt.p.Origin)
			}
			if tt.p.Namespace != tt.ns {
				t.Errorf("expected namespace %s, got %s", tt.ns, tt.p.Namespace)
			}
			if !bytes.Equal(tt.p.Data, tt.data) {
				t.Errorf("expected %x, got %x", tt.data, tt.p.Data)
			}
			if (tt.p.Err != nil) != tt.bad {
				t.Errorf("unexpected error state: %v", tt.p.Err)
			}
			if tt.bad && !errors.Is(tt.p.Err, apperrors.ErrInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", tt.p.Err)
			}
			if tt.p.Program != "pumpfun" {
				t.Errorf("expected program pumpfun, got %s", tt.p.Program)
			}
		})
	}
}

func TestLineSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewLineSource(strings.NewReader("00\n"), EncodingHex, "", decoder.Events)
	if _, err := src.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func cpmmLogs() []string {
	id := raydiumcpmm.ProgramID.String()
	return []string{
		"Program ComputeBudget111111111111111111111111111111 invoke [1]",
		"Program data: " + b64([]byte{9, 9}),
		"Program ComputeBudget111111111111111111111111111111 success",
		"Program " + id + " invoke [1]",
		"Program log: Instruction: SwapBaseInput",
		"Program TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA invoke [2]",
		"Program data: " + b64([]byte{7}),
		"Program TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA success",
		"Program data: " + b64(deadbeef),
		"Program data: ###",
		"Program " + id + " success",
	}
}

func TestLogSource(t *testing.T) {
	reg := programs.Default()

	src, err := NewLogSource(reg, raydiumcpmm.Name, cpmmLogs(), "sig", 10)
	if err != nil {
		t.Fatalf("NewLogSource failed: %v", err)
	}
	if src.Len() != 2 {
		t.Fatalf("expected 2 payloads, got %d", src.Len())
	}

	first, _ := src.Next(context.Background())
	if first.Index != 10 || first.Program != raydiumcpmm.Name || first.Namespace != decoder.Events {
		t.Errorf("unexpected payload %+v", first)
	}
	if !bytes.Equal(first.Data, deadbeef) {
		t.Errorf("expected %x, got %x", deadbeef, first.Data)
	}
	if first.Origin != "sig ix [1] log 8" {
		t.Errorf("unexpected origin %q", first.Origin)
	}

	second, _ := src.Next(context.Background())
	if !errors.Is(second.Err, apperrors.ErrInvalidInput) {
		t.Errorf("expected INVALID_INPUT for the bad chunk, got %v", second.Err)
	}
	if _, err := src.Next(context.Background()); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestLogSourceAllRegistered(t *testing.T) {
	src, err := NewLogSource(programs.Default(), "", cpmmLogs(), "sig", 0)
	if err != nil {
		t.Fatal(err)
	}
	// ComputeBudget and Token are not registered.
	if src.Len() != 2 {
		t.Errorf("expected 2 payloads, got %d", src.Len())
	}
}

func TestLogSourceUnknownProgram(t *testing.T) {
	_, err := NewLogSource(programs.Default(), "nope", nil, "sig", 0)
	if !errors.Is(err, apperrors.ErrUnknownProgram) {
		t.Errorf("expected UNKNOWN_PROGRAM, got %v", err)
	}
}

type fakeRPC struct {
	accounts map[solana.PublicKey]*rpc.Account
	logs     map[solana.Signature][]string
	err      error
}

func (f *fakeRPC) GetMultipleAccounts(_ context.Context, keys []solana.PublicKey) ([]*rpc.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*rpc.Account, len(keys))
	for i, k := range keys {
		out[i] = f.accounts[k]
	}
	return out, nil
}

func (f *fakeRPC) GetTransactionLogs(_ context.Context, sig solana.Signature) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.logs[sig], nil
}

func TestAccountSource(t *testing.T) {
	owned := solana.NewWallet().PublicKey()
	missing := solana.NewWallet().PublicKey()
	foreign := solana.NewWallet().PublicKey()

	fake := &fakeRPC{accounts: map[solana.PublicKey]*rpc.Account{
		owned:   {Owner: pumpfun.ProgramID, Data: rpc.DataBytesOrJSONFromBytes(deadbeef)},
		foreign: {Owner: solana.SystemProgramID, Data: rpc.DataBytesOrJSONFromBytes([]byte{1})},
	}}

	src := NewAccountSource(fake, programs.Default(), []solana.PublicKey{owned, missing, foreign})
	got, err := Drain(context.Background(), src)
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(got))
	}
	if got[0].Program != pumpfun.Name || got[0].Namespace != decoder.Accounts || got[0].Origin != owned.String() {
		t.Errorf("unexpected payload %+v", got[0])
	}
	if !bytes.Equal(got[0].Data, deadbeef) {
		t.Errorf("expected %x, got %x", deadbeef, got[0].Data)
	}
	if got[1].Index != 1 || !errors.Is(got[1].Err, apperrors.ErrUnknownProgram) {
		t.Errorf("expected UNKNOWN_PROGRAM at index 1, got %+v", got[1])
	}
}

func TestAccountSourceFetchError(t *testing.T) {
	src := NewAccountSource(&fakeRPC{err: errors.New("429")}, programs.Default(), []solana.PublicKey{solana.SystemProgramID})
	if _, err := src.Next(context.Background()); !errors.Is(err, apperrors.ErrSourceFailed) {
		t.Errorf("expected SOURCE_FAILED, got %v", err)
	}
}

func TestTransactionLogSource(t *testing.T) {
	sigA := solana.Signature{1}
	sigB := solana.Signature{2}
	sigC := solana.Signature{3}
	fake := &fakeRPC{logs: map[solana.Signature][]string{
		sigA: cpmmLogs(),
		sigB: {"Program log: nothing here"},
		sigC: cpmmLogs(),
	}}

	src := NewTransactionLogSource(fake, programs.Default(), raydiumcpmm.Name, []solana.Signature{sigA, sigB, sigC})
	got, err := Drain(context.Background(), src)
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 payloads, got %d", len(got))
	}
	for i, p := range got {
		if p.Index != i {
			t.Errorf("payload %d has index %d", i, p.Index)
		}
	}
	if !strings.HasPrefix(got[2].Origin, sigC.String()) {
		t.Errorf("expected origin from %s, got %q", sigC, got[2].Origin)
	}
}
