package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/espanso"
	"github.com/ontoforge/ontosnip/generate"
)

func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalog and published tree consistency",
		Long: `Validate checks the catalog invariants (unique names, well-formed
ontology URLs) and then verifies the published tree against it: every
catalog package present at <name>/<version> with agreeing manifests,
and no orphan package directories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				// Config loading already validates the catalog; surface
				// that as the finding.
				return err
			}

			manifests := make([]espanso.Manifest, 0, len(cfg.Packages))
			for _, pkg := range cfg.Packages {
				manifests = append(manifests, generate.ManifestFor(pkg, cfg.Repository.Author))
			}

			problems := espanso.VerifyTree(cfg.Output.Dir, manifests)
			if len(problems) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d packages consistent under %s\n",
					len(manifests), cfg.Output.Dir)
				return nil
			}

			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), p.String())
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}
