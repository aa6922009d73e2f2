package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tLABEL\tONTOLOGY")
			for _, pkg := range cfg.Packages {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pkg.Name, pkg.Version, pkg.Label, pkg.OntologyURL)
			}
			return w.Flush()
		},
	}
}
