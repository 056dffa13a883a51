package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/internal/source"
	"github.com/lugondev/solcodec/pkg/decoder"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		program   string
		namespace string
		input     string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode encoded payloads, one per line",
		Long: `Decode account or event payloads read one per line from a file or stdin.

Each line holds one payload in the configured encoding. A line may start
with "accounts:" or "events:" to override --namespace. Blank lines and
lines starting with # are skipped. Payloads that fail to decode are
reported and written as failure records; the run continues.`,
		Example: `  solcodec decode --program pumpfun --namespace events --encoding base64 < events.txt
  solcodec decode --program raydium_clmm --input accounts.hex --encoding hex -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := decoder.ParseNamespace(namespace)
			if err != nil {
				return apperrors.FromRegistry(err)
			}
			if _, err := a.registry.Resolve(program); err != nil {
				return apperrors.FromRegistry(err)
			}
			enc, err := source.ParseEncoding(a.cfg.Decode.Encoding)
			if err != nil {
				return err
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

			src := source.NewLineSource(r, enc, program, ns)
			src.SetLogger(a.logger)
			return a.run(cmd.Context(), cmd, src)
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program name or id")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", string(decoder.Accounts), "default namespace (accounts, events)")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "input file, - for stdin")
	cmd.Flags().String("encoding", "base64", "payload encoding (hex, base64, base58)")
	_ = cmd.MarkFlagRequired("program")
	return cmd
}
