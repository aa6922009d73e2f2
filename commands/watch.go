package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/generate"
	"github.com/ontoforge/ontosnip/watch"
)

func newWatchCommand(flags *rootFlags) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild packages when local ontology files change",
		Long: `Watch runs an initial generate, then watches the directories of
file-sourced ontologies and rebuilds the affected packages after a
quiet period. Packages with http or git sources are built once and
then left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			pipeline := generate.New(cfg, slog.Default())
			if _, err := pipeline.Run(cmd.Context(), nil); err != nil {
				return err
			}

			w, err := watch.New(cfg, pipeline, watch.Config{
				DebounceDelay: debounce,
				Logger:        slog.Default(),
			})
			if err != nil {
				return err
			}

			err = w.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Quiet period before rebuilding")

	return cmd
}
