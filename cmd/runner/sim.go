package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

var (
	flagDuration time.Duration
	flagDT       time.Duration
	flagRender   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play a run without a terminal UI. A seeded autopilot starts the game,
dodges, collects, shops and reboots; the final state is printed at the end.
The same --seed, --duration and --dt always produce the same result.

Examples:
  runner sim
  runner sim --duration 5m --dt 10ms --seed 42
  runner sim --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time to run")
	simCmd.Flags().DurationVar(&flagDT, "dt", 16*time.Millisecond, "Frame delta")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %v", flagDT)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed

	game := runner.New(cfg, rt, runner.WithLogger(logger))
	bot := runner.NewAutopilot(seed)

	frames, runs := 0, 0
	snap := game.Snapshot()
	for elapsed := time.Duration(0); elapsed < flagDuration; elapsed += flagDT {
		prev := snap.Status
		snap = game.Step(flagDT, bot.Decide(snap)).Snapshot
		if snap.Status == runner.StatusPlaying.String() && prev != runner.StatusPlaying.String() && prev != runner.StatusShop.String() {
			runs++
		}
		frames++
	}

	out := cmd.OutOrStdout()
	if flagRender {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		runner.RenderSnapshot(screen, snap)
		fmt.Fprintln(out, screen.String())
	}

	fmt.Fprintf(out, "frames:   %d\n", frames)
	fmt.Fprintf(out, "runs:     %d\n", runs)
	fmt.Fprintf(out, "status:   %s\n", snap.Status)
	fmt.Fprintf(out, "score:    %d\n", snap.Score)
	fmt.Fprintf(out, "lives:    %d/%d\n", snap.Lives, snap.MaxLives)
	fmt.Fprintf(out, "layer:    %d/%d (%d lanes)\n", snap.Level, snap.MaxLevel, snap.LaneCount)
	fmt.Fprintf(out, "distance: %.1f\n", snap.Distance)
	fmt.Fprintf(out, "gems:     %d\n", snap.Gems)
	fmt.Fprintf(out, "letters:  %s (%d/%d)\n", letters(snap.Letters),
		len(game.State().CollectedLetters()), runner.WordLength)
	return nil
}

// letters shows collected letters of the word and dashes for the rest.
func letters(got [runner.WordLength]bool) string {
	b := []byte(runner.TargetWord)
	for i, ok := range got {
		if !ok {
			b[i] = '-'
		}
	}
	return string(b)
}
