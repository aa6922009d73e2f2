package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/generate"
)

func newGenerateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [package...]",
		Short: "Build snippet packages from their ontology sources",
		Long: `Generate fetches each package's ontology, extracts terms, and writes
the package tree. With no arguments every catalog package is built;
otherwise only the named ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			pipeline := generate.New(cfg, slog.Default())
			report, err := pipeline.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			for _, pr := range report.Packages {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d terms (%d triples) -> %s\n",
					pr.Name, pr.Version, pr.Terms, pr.Triples, pr.Output)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s completed in %s\n", report.RunID, report.Duration)
			return nil
		},
	}
}
