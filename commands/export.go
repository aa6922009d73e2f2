package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/export"
	"github.com/ontoforge/ontosnip/generate"
	"github.com/ontoforge/ontosnip/prefixmap"
)

func newExportCommand(flags *rootFlags) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export <package>",
		Short: "Dump a package's parsed ontology graph",
		Long: `Export fetches and parses a catalog package's ontology documents,
then serializes the merged graph. Useful for checking what the RDF/XML
reader actually saw when a prefix map or extract kind produces fewer
terms than expected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			pkg, ok := cfg.Catalog().Find(args[0])
			if !ok {
				return fmt.Errorf("unknown package %q (catalog has: %v)", args[0], cfg.Catalog().Names())
			}

			pm, err := prefixmap.FromMap(pkg.Prefixes)
			if err != nil {
				return fmt.Errorf("prefixes: %w", err)
			}

			g, skipped, err := generate.New(cfg, slog.Default()).Graph(cmd.Context(), *pkg)
			if err != nil {
				return fmt.Errorf("package %s: %w", pkg.Name, err)
			}
			if skipped > 0 {
				slog.Warn("Skipped statements during parse", "package", pkg.Name, "skipped", skipped)
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return export.Write(out, g, format, pm)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatTurtle), "Serialization format (ntriples, turtle)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}
