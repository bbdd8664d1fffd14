package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hweber/dotscreen"
)

// newMethodsCmd lists the halftone catalogue.
func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available halftone methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := dotscreen.NewDefaultRegistry()
			for _, name := range registry.AvailableMethods() {
				desc, err := registry.Describe(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, desc)
			}
			return nil
		},
	}
}
