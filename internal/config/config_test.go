package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/lugondev/solcodec/internal/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestReadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solcodec.yaml")
	yaml := `
log:
  level: debug
decode:
  encoding: hex
  workers: 8
sink:
  type: file
  path: out.jsonl
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOLCODEC_DECODE_WORKERS", "2")
	t.Setenv("SOLCODEC_POSTGRES_HOST", "db.internal")

	cfg, err := Read(New(path))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"file value", cfg.Log.Level, "debug"},
		{"file encoding", cfg.Decode.Encoding, "hex"},
		{"env beats file", cfg.Decode.Workers, 2},
		{"env without file key", cfg.Postgres.Host, "db.internal"},
		{"default kept", cfg.Output.Format, "json"},
		{"sink path", cfg.Sink.Path, "out.jsonl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestMissingConfigFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Read(New("")); err != nil {
		t.Fatalf("expected defaults without a config file, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SOLCODEC_SOLANA_NETWORK=devnet\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOLCODEC_SOLANA_NETWORK", "")
	os.Unsetenv("SOLCODEC_SOLANA_NETWORK")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	t.Chdir(dir)
	cfg, err := Read(New(""))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cfg.Solana.Network != "devnet" {
		t.Errorf("expected devnet, got %s", cfg.Solana.Network)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"encoding", func(c *Config) { c.Decode.Encoding = "base32" }, "decode.encoding"},
		{"output", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"sink type", func(c *Config) { c.Sink.Type = "kafka" }, "sink.type"},
		{"workers", func(c *Config) { c.Decode.Workers = 0 }, "decode.workers"},
		{"batch size", func(c *Config) { c.Sink.BatchSize = 0 }, "sink.batch_size"},
		{"file without path", func(c *Config) { c.Sink.Type = "file" }, "sink.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, apperrors.ErrConfigInvalid) {
				t.Fatalf("expected CONFIG_INVALID, got %v", err)
			}
			var ce *apperrors.CodecError
			if !errors.As(err, &ce) {
				t.Fatal("expected a CodecError")
			}
			if ce.Details["key"] != tt.key {
				t.Errorf("expected key %s, got %v", tt.key, ce.Details["key"])
			}
		})
	}
}

func TestGetRPCEndpoint(t *testing.T) {
	tests := []struct {
		cfg  SolanaConfig
		want string
	}{
		{SolanaConfig{RPC: "http://custom:8899"}, "http://custom:8899"},
		{SolanaConfig{Network: "devnet"}, "https://api.devnet.solana.com"},
		{SolanaConfig{Network: "localnet"}, "http://localhost:8899"},
		{SolanaConfig{Network: "mainnet"}, "https://api.mainnet-beta.solana.com"},
	}
	for _, tt := range tests {
		if got := tt.cfg.GetRPCEndpoint(); got != tt.want {
			t.Errorf("GetRPCEndpoint(%+v) = %s; want %s", tt.cfg, got, tt.want)
		}
	}
}
