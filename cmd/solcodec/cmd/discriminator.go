package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
)

func newDiscriminatorCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discriminator <account|event> <Name>",
		Short: "Print the Anchor discriminator of an account or event name",
		Example: `  solcodec discriminator event SwapEvent
  solcodec discriminator account PoolState`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := decoder.ParseNamespace(args[0])
			if err != nil {
				return apperrors.FromRegistry(err)
			}
			tag := ns.Discriminator(args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", tag, tag.Bytes())
			return nil
		},
	}
}
