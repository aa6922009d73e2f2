// Package commands defines the ontosnip CLI surface.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/config"
)

// rootFlags carries the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	outputDir  string
	logLevel   string
}

// NewRootCommand builds the ontosnip command tree.
func NewRootCommand(version string) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ontosnip",
		Short: "Build text-expansion snippet packages from OWL ontologies",
		Long: `Ontosnip reads OWL ontologies (RDF/XML) and generates espanso-compatible
snippet packages: one trigger/replace match per ontology term, laid out
as a package repository installable with

  espanso install --git <repository-url> --external <package-name>

The shipped catalog covers the Industrial Ontology Foundry Core
(iof-core) and the Basic Formal Ontology (bfo).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (ontosnip.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory for the package tree")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGenerateCommand(flags),
		newValidateCommand(flags),
		newListCommand(flags),
		newWatchCommand(flags),
		newExportCommand(flags),
		newInitCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ontosnip version %s\n", version)
			},
		},
	)

	return cmd
}

// loadConfig resolves the layered configuration, applies flag
// overrides, and configures the default logger.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	level := slog.LevelInfo
	if flags.logLevel != "" {
		level = parseLevel(flags.logLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}

	// Flag wins, then config, for the log level.
	if flags.logLevel == "" && cfg.Log.Level != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))
		slog.SetDefault(logger)
	}

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
