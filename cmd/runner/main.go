// runner is GENSYN RUNNER, a lane-switching endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner sim               - Run a headless autopilot game and print the result
//	runner shop              - Show the upgrade catalog
//	runner defaults          - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom tuning YAML
//	--difficulty <p>    - Difficulty preset: easy, normal, hard, fixed
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "GENSYN RUNNER - break through the network, one layer at a time",
	Long: `GENSYN RUNNER is an endless runner for your terminal. Switch lanes,
jump over firewalls, collect the letters G-E-N-S-Y-N to open the layer gate,
and spend your compute on upgrades at the shop terminals.

Available commands:
  play      - Play in the terminal
  sim       - Headless autopilot run
  shop      - Show the upgrade catalog
  defaults  - Print the default tuning YAML

Examples:
  runner play
  runner play --difficulty hard --seed 42
  runner play --config ./runner.yaml --watch
  runner sim --duration 2m --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(defaultsCmd)
}
