package cmd

import (
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	sol "github.com/lugondev/solcodec/internal/solana"
	"github.com/lugondev/solcodec/internal/source"
)

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <address...>",
		Short: "Fetch accounts over RPC and decode them",
		Long: `Fetch accounts with getMultipleAccounts and decode each one with the
account table of its owning program. Accounts that do not exist are
skipped; accounts owned by unknown programs are reported as failures.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]solana.PublicKey, len(args))
			for i, s := range args {
				key, err := solana.PublicKeyFromBase58(s)
				if err != nil {
					return apperrors.InvalidInput("address "+s, err)
				}
				keys[i] = key
			}

			client := sol.NewClient(a.cfg.Solana.GetRPCEndpoint(), a.cfg.Solana.RequestTimeout())
			src := source.NewAccountSource(client, a.registry, keys)
			src.SetLogger(a.logger)
			return a.run(cmd.Context(), cmd, src)
		},
	}
}
