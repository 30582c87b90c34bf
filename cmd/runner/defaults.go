package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gensyn-runner/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default tuning YAML",
	Long: `Prints the built-in tuning. Save it to ~/.gensyn/configs/runner.yaml
or ./configs/runner.yaml and edit it to change physics, spawning and scoring.

Example:
  runner defaults > ~/.gensyn/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
