package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lugondev/solcodec/internal/common"
	"github.com/lugondev/solcodec/internal/config"
	"github.com/lugondev/solcodec/internal/pipeline"
	"github.com/lugondev/solcodec/internal/sink"
	_ "github.com/lugondev/solcodec/internal/sink/mongo"
	_ "github.com/lugondev/solcodec/internal/sink/postgres"
	"github.com/lugondev/solcodec/internal/source"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs"
)

// app carries the state shared by every subcommand once configuration is loaded.
type app struct {
	cfgFile  string
	v        *viper.Viper
	cfg      *config.Config
	logger   *slog.Logger
	registry *decoder.Registry
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"rpc":        "solana.rpc",
	"network":    "solana.network",
	"timeout":    "solana.timeout",
	"output":     "output.format",
	"sink":       "sink.type",
	"sink-path":  "sink.path",
	"batch-size": "sink.batch_size",
	"encoding":   "decode.encoding",
	"workers":    "decode.workers",
	"strict":     "decode.strict",
}

// NewRootCmd builds the solcodec command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "solcodec",
		Short: "Decode Solana program accounts and events",
		Long: `solcodec decodes Anchor-style account data and event payloads of
Solana DeFi programs into typed records.

It provides commands for:
- Decoding encoded payloads from a file or stdin
- Extracting events from transaction logs
- Fetching and decoding accounts over RPC
- Listing known record shapes and their discriminators`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.solcodec.yaml or $HOME/.solcodec.yaml)")
	flags.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Log.Format, "log format (text, json)")
	flags.String("rpc", "", "Solana RPC endpoint (overrides --network)")
	flags.String("network", defaults.Solana.Network, "Solana network (mainnet, devnet, testnet, localnet)")
	flags.Int("timeout", defaults.Solana.Timeout, "RPC request timeout in seconds")
	flags.StringP("output", "o", defaults.Output.Format, "output format (json, yaml)")
	flags.String("sink", defaults.Sink.Type, "record sink (stdout, file, postgres, mongo)")
	flags.String("sink-path", "", "output file for the file sink")
	flags.Int("batch-size", defaults.Sink.BatchSize, "payloads decoded and written per batch")
	flags.Int("workers", defaults.Decode.Workers, "concurrent decoders")
	flags.Bool("strict", defaults.Decode.Strict, "reject payloads with trailing bytes")

	rootCmd.AddCommand(
		newDecodeCmd(a),
		newLogsCmd(a),
		newFetchCmd(a),
		newShapesCmd(a),
		newDiscriminatorCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args. SIGINT and SIGTERM cancel
// the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	a.v = config.New(a.cfgFile)

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = a.v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, err := config.Read(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = common.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)

	reg, err := programs.NewRegistry(a.logger)
	if err != nil {
		return err
	}
	reg.Freeze()
	a.registry = reg
	return nil
}

// run drains src into the configured sink.
func (a *app) run(ctx context.Context, cmd *cobra.Command, src source.Source) error {
	out, err := sink.New(ctx, a.cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	p := pipeline.NewPipelineBuilder().
		Source(src).
		Registry(a.registry).
		Sink(out).
		Config(a.cfg).
		Logger(a.logger).
		Build()

	summary, runErr := p.Run(ctx)
	if err := out.Close(ctx); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		a.logger.Error("run failed", "decoded", summary.Decoded, "failed", summary.Failed, "error", runErr)
	}
	return runErr
}
