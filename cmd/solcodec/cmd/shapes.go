package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/decoder"
)

func newShapesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [program]",
		Short: "List registered record shapes and their discriminators",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progs := a.registry.Programs()
			if len(args) == 1 {
				p, err := a.registry.Resolve(args[0])
				if err != nil {
					return apperrors.FromRegistry(err)
				}
				progs = []*decoder.Program{p}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROGRAM\tNAMESPACE\tSHAPE\tDISCRIMINATOR")
			for _, p := range progs {
				for _, ns := range []decoder.Namespace{decoder.Accounts, decoder.Events} {
					t, err := p.Table(ns)
					if err != nil {
						continue
					}
					for _, s := range t.Shapes() {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, ns, s.Name(), s.Discriminator())
					}
				}
			}
			return w.Flush()
		},
	}
}
