// Package config loads solcodec settings from a YAML file, a .env file and
// SOLCODEC_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/lugondev/solcodec/internal/errors"
)

const EnvPrefix = "SOLCODEC"

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Solana   SolanaConfig   `mapstructure:"solana"`
	Decode   DecodeConfig   `mapstructure:"decode"`
	Output   OutputConfig   `mapstructure:"output"`
	Sink     SinkConfig     `mapstructure:"sink"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	MongoDB  MongoDBConfig  `mapstructure:"mongodb"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// SolanaConfig holds Solana-specific configuration
type SolanaConfig struct {
	RPC     string `mapstructure:"rpc"`
	Network string `mapstructure:"network"`
	Timeout int    `mapstructure:"timeout"` // in seconds
}

// DecodeConfig controls payload framing and the decode stage.
type DecodeConfig struct {
	Encoding string `mapstructure:"encoding"` // hex, base64 or base58
	Workers  int    `mapstructure:"workers"`
	Strict   bool   `mapstructure:"strict"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // json or yaml
}

type SinkConfig struct {
	Type      string `mapstructure:"type"` // stdout, file, postgres or mongo
	Path      string `mapstructure:"path"`
	BatchSize int    `mapstructure:"batch_size"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int    `mapstructure:"max_conns"`
}

type MongoDBConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
	Timeout    int    `mapstructure:"timeout"` // in seconds
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Solana: SolanaConfig{
			Network: "mainnet",
			Timeout: 30,
		},
		Decode: DecodeConfig{
			Encoding: "base64",
			Workers:  4,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Sink: SinkConfig{
			Type:      "stdout",
			BatchSize: 256,
		},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "solcodec",
			SSLMode:  "disable",
			MaxConns: 4,
		},
		MongoDB: MongoDBConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "solcodec",
			Collection: "decoded_records",
			Timeout:    10,
		},
	}
}

// setDefaults registers every default so that environment variables bind
// to keys that appear in no config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("solana.rpc", cfg.Solana.RPC)
	v.SetDefault("solana.network", cfg.Solana.Network)
	v.SetDefault("solana.timeout", cfg.Solana.Timeout)
	v.SetDefault("decode.encoding", cfg.Decode.Encoding)
	v.SetDefault("decode.workers", cfg.Decode.Workers)
	v.SetDefault("decode.strict", cfg.Decode.Strict)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("sink.type", cfg.Sink.Type)
	v.SetDefault("sink.path", cfg.Sink.Path)
	v.SetDefault("sink.batch_size", cfg.Sink.BatchSize)
	v.SetDefault("postgres.host", cfg.Postgres.Host)
	v.SetDefault("postgres.port", cfg.Postgres.Port)
	v.SetDefault("postgres.user", cfg.Postgres.User)
	v.SetDefault("postgres.password", cfg.Postgres.Password)
	v.SetDefault("postgres.database", cfg.Postgres.Database)
	v.SetDefault("postgres.ssl_mode", cfg.Postgres.SSLMode)
	v.SetDefault("postgres.max_conns", cfg.Postgres.MaxConns)
	v.SetDefault("mongodb.uri", cfg.MongoDB.URI)
	v.SetDefault("mongodb.database", cfg.MongoDB.Database)
	v.SetDefault("mongodb.collection", cfg.MongoDB.Collection)
	v.SetDefault("mongodb.timeout", cfg.MongoDB.Timeout)
}

// New returns a viper instance wired for solcodec: defaults, the SOLCODEC_
// prefix and the config file search path. Commands bind their flags to it.
func New(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".solcodec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Read reads the config file (ignored if not found) and decodes v into a
// validated Config.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration from .env, file and environment
func Load(configPath string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return Read(New(configPath))
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return apperrors.ConfigInvalid(key, value)
}

// Validate rejects values outside their allowed sets with CONFIG_INVALID.
func (c *Config) Validate() error {
	checks := []error{
		oneOf("log.level", strings.ToLower(c.Log.Level), "debug", "info", "warn", "error"),
		oneOf("log.format", c.Log.Format, "text", "json"),
		oneOf("decode.encoding", c.Decode.Encoding, "hex", "base64", "base58"),
		oneOf("output.format", c.Output.Format, "json", "yaml"),
		oneOf("sink.type", c.Sink.Type, "stdout", "file", "postgres", "mongo"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	switch {
	case c.Decode.Workers < 1:
		return apperrors.ConfigInvalid("decode.workers", c.Decode.Workers)
	case c.Sink.BatchSize < 1:
		return apperrors.ConfigInvalid("sink.batch_size", c.Sink.BatchSize)
	case c.Sink.Type == "file" && c.Sink.Path == "":
		return apperrors.ConfigInvalid("sink.path", c.Sink.Path)
	case c.Solana.Timeout < 0:
		return apperrors.ConfigInvalid("solana.timeout", c.Solana.Timeout)
	}
	return nil
}

// GetRPCEndpoint returns the RPC endpoint for the configured network
func (c *SolanaConfig) GetRPCEndpoint() string {
	if c.RPC != "" {
		return c.RPC
	}

	switch c.Network {
	case "devnet":
		return "https://api.devnet.solana.com"
	case "testnet":
		return "https://api.testnet.solana.com"
	case "localnet", "localhost":
		return "http://localhost:8899"
	default:
		return "https://api.mainnet-beta.solana.com"
	}
}

// RequestTimeout returns the RPC timeout as a duration.
func (c *SolanaConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DSN returns a pgx connection string.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode, c.MaxConns)
}
