package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	sol "github.com/lugondev/solcodec/internal/solana"
	"github.com/lugondev/solcodec/internal/source"
)

func newLogsCmd(a *app) *cobra.Command {
	var (
		program    string
		input      string
		signatures []string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Decode events from transaction logs",
		Long: `Extract "Program data:" payloads from transaction logs and decode them as events.

Logs come either from a file with one log message per line (--input) or
from transactions fetched over RPC (--signature, repeatable). With
--program only payloads logged by that program are kept; without it every
registered program contributes.`,
		Example: `  solcodec logs --program raydium_cpmm --input tx.log
  solcodec logs --signature 5h6x...Qk --network mainnet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if program != "" {
				if _, err := a.registry.Resolve(program); err != nil {
					return apperrors.FromRegistry(err)
				}
			}

			if len(signatures) > 0 {
				sigs := make([]solana.Signature, len(signatures))
				for i, s := range signatures {
					sig, err := solana.SignatureFromBase58(s)
					if err != nil {
						return apperrors.InvalidInput("signature "+s, err)
					}
					sigs[i] = sig
				}
				client := sol.NewClient(a.cfg.Solana.GetRPCEndpoint(), a.cfg.Solana.RequestTimeout())
				src := source.NewTransactionLogSource(client, a.registry, program, sigs)
				src.SetLogger(a.logger)
				return a.run(cmd.Context(), cmd, src)
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return apperrors.InvalidInput("input file", err)
				}
				defer f.Close()
				r = f
			}
			logs, err := readLines(r)
			if err != nil {
				return apperrors.SourceFailed("log file", err)
			}

			origin := "logs"
			if input != "" && input != "-" {
				origin = input
			}
			src, err := source.NewLogSource(a.registry, program, logs, origin, 0)
			if err != nil {
				return err
			}
			src.SetLogger(a.logger)
			return a.run(cmd.Context(), cmd, src)
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program name or id")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "log file, - for stdin")
	cmd.Flags().StringArrayVarP(&signatures, "signature", "s", nil, "transaction signature to fetch")
	cmd.MarkFlagsMutuallyExclusive("input", "signature")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
