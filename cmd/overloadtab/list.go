package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/internal/configkeys"
)

func newListCmd(a *app) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the overload table in resolution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.table()
			if err != nil {
				return err
			}

			t := table{
				Registry:    reg.ID(),
				Fingerprint: formatFingerprint(reg.Fingerprint()),
				Entries:     reg.Entries(),
			}
			if only != "" {
				t.Entries = reg.Chain(capability.Named(only))
				if len(t.Entries) == 0 {
					return fmt.Errorf("no overloads declared for capability %q", only)
				}
			}
			return writeTable(cmd.OutOrStdout(), a.cfg.GetString(configkeys.ConfigOutputFormat), t)
		},
	}
	cmd.Flags().String("format", "", "output format: text or yaml (default text)")
	cmd.Flags().StringVar(&only, "capability", "", "print only the chain of this capability")
	return cmd
}
