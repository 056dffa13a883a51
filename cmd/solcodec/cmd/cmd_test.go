package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs"
	"github.com/lugondev/solcodec/pkg/programs/raydiumcpmm"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDiscriminatorCmd(t *testing.T) {
	out, _, err := execute(t, "", "discriminator", "event", "SwapEvent")
	if err != nil {
		t.Fatalf("discriminator failed: %v", err)
	}
	if !strings.HasPrefix(out, "40c6cde8260871e2 ") {
		t.Errorf("unexpected output %q", out)
	}

	if _, _, err := execute(t, "", "discriminator", "instruction", "Swap"); !errors.Is(err, apperrors.ErrUnknownNamespace) {
		t.Errorf("expected UNKNOWN_NAMESPACE, got %v", err)
	}
}

func TestShapesCmd(t *testing.T) {
	out, _, err := execute(t, "", "shapes", raydiumcpmm.Name)
	if err != nil {
		t.Fatalf("shapes failed: %v", err)
	}
	for _, want := range []string{"PROGRAM", "LpChangeEvent", "SwapEvent", "40c6cde8260871e2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "pumpfun") {
		t.Error("expected only the requested program")
	}

	if _, _, err := execute(t, "", "shapes", "nope"); !errors.Is(err, apperrors.ErrUnknownProgram) {
		t.Errorf("expected UNKNOWN_PROGRAM, got %v", err)
	}
}

func swapHex(t *testing.T) string {
	t.Helper()
	table, err := programs.Default().Table(raydiumcpmm.Name, decoder.Events)
	if err != nil {
		t.Fatal(err)
	}
	data, err := table.Encode(&raydiumcpmm.SwapEvent{PoolID: solana.SystemProgramID, OutputAmount: 9})
	if err != nil {
		t.Fatal(err)
	}
	return hex.EncodeToString(data)
}

func TestDecodeCmd(t *testing.T) {
	stdin := swapHex(t) + "\nffffffffffffffff\n"
	out, stderr, err := execute(t, stdin,
		"decode", "--program", raydiumcpmm.Name, "--namespace", "events", "--encoding", "hex")
	if err != nil {
		t.Fatalf("decode failed: %v\n%s", err, stderr)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d:\n%s", len(lines), out)
	}
	var first struct {
		Shape string `json:"shape"`
		Data  struct {
			OutputAmount uint64 `json:"output_amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Shape != "SwapEvent" || first.Data.OutputAmount != 9 {
		t.Errorf("unexpected record %s", lines[0])
	}
	if !strings.Contains(lines[1], "unknown discriminator") {
		t.Errorf("expected a failure record, got %s", lines[1])
	}
	if !strings.Contains(stderr, "decode failed") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
}

func TestDecodeCmdFileSinkYAML(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.hex")
	output := filepath.Join(dir, "out.yaml")
	if err := os.WriteFile(input, []byte("events:"+swapHex(t)+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "decode", "-p", raydiumcpmm.ProgramID.String(),
		"--encoding", "hex", "-i", input, "-o", "yaml", "--sink", "file", "--sink-path", output)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("shape: SwapEvent")) || !bytes.Contains(data, []byte("output_amount: 9")) {
		t.Errorf("unexpected YAML:\n%s", data)
	}
}

func TestDecodeCmdConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"encoding", []string{"decode", "-p", "pumpfun", "--encoding", "base32"}, apperrors.ErrConfigInvalid},
		{"program", []string{"decode", "-p", "nope"}, apperrors.ErrUnknownProgram},
		{"namespace", []string{"decode", "-p", "pumpfun", "-n", "blocks"}, apperrors.ErrUnknownNamespace},
		{"workers", []string{"decode", "-p", "pumpfun", "--workers", "0"}, apperrors.ErrConfigInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLogsCmd(t *testing.T) {
	table, err := programs.Default().Table(raydiumcpmm.Name, decoder.Events)
	if err != nil {
		t.Fatal(err)
	}
	data, err := table.Encode(&raydiumcpmm.LpChangeEvent{PoolID: solana.SystemProgramID, ChangeType: raydiumcpmm.ChangeWithdraw})
	if err != nil {
		t.Fatal(err)
	}
	id := raydiumcpmm.ProgramID.String()
	logs := strings.Join([]string{
		"Program " + id + " invoke [1]",
		"Program log: Instruction: Withdraw",
		"Program data: " + b64(data),
		"Program " + id + " success",
	}, "\n")

	out, _, err := execute(t, logs, "logs", "--program", raydiumcpmm.Name)
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if !strings.Contains(out, `"shape":"LpChangeEvent"`) || !strings.Contains(out, `"change_type":1`) {
		t.Errorf("unexpected output %s", out)
	}
	if !strings.Contains(out, `"origin":"logs ix [0] log 2"`) {
		t.Errorf("expected origin with frame path, got %s", out)
	}
}

func TestVersionCmdSkipsConfig(t *testing.T) {
	t.Setenv("SOLCODEC_LOG_LEVEL", "loud")
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "Version:    dev") {
		t.Errorf("unexpected output %q", out)
	}
}
