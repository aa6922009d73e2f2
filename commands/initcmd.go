package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ontoforge/ontosnip/config"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default ontosnip.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			path, err := config.NewLoader(nil).EnsureProjectConfig(cwd)
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "ontosnip.yaml already exists")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
