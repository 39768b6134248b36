package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/registry"
	"github.com/vovakirdan/space-defender/internal/storage"
	"github.com/vovakirdan/space-defender/internal/telemetry"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagRecord      string
	flagRecordEvery int
	flagHold        time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Defender",
	Long: `Start a game in this terminal.

Controls:
  Up/W       - Thrust
  Left/A     - Turn left
  Right/D    - Turn right
  Space/F    - Fire
  Esc/Q      - Quit (score is saved)

Terminals do not report key releases, so a steering key counts as held
until it stops auto-repeating for --hold.

Difficulty options:
  easy   - Fewer shots, smaller waves
  normal - Start at 30% difficulty, progresses to max
  hard   - More shots, faster enemies, bigger waves
  fixed  - No progression, stays at config's initial level

Examples:
  defender play
  defender play --difficulty easy
  defender play --config ./my-defender.yaml
  defender play --seed 42 --record run.csv`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write per-tick telemetry to this CSV file")
	playCmd.Flags().IntVar(&flagRecordEvery, "record-every", 1, "Record every Nth tick")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldTimeout, "How long a steering key stays held without repeats")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before entering the alternate screen if the config is broken.
	if _, err := config.LoadDefender(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defender.SetConfigPath(flagConfig)
	defender.SetDifficultyPreset(string(preset))

	// The game owns the alternate screen, so logs are dropped unless a file is given.
	logger, closeLog, err := newLogger("defender", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := registry.Create(defender.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	recorder, err := telemetry.NewRecorder(flagRecord, flagRecordEvery)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		recorder = nil
	}

	session, runErr := tui.Run(game, cfg, tui.Options{
		Store:       store,
		Recorder:    recorder,
		Logger:      logger,
		HoldTimeout: flagHold,
	})

	if recorder != nil {
		if err := recorder.Close(); err != nil {
			logger.Warn("closing telemetry", "error", err)
		}
	}

	var best int
	if store != nil {
		best, _ = store.HighScore(defender.ID)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(session, best, cfg.Seed)
}

func printSummary(s storage.Session, best int, seed int64) {
	if s.Ticks == 0 {
		return
	}
	fmt.Printf("Enemies destroyed: %d\n", s.Score)
	fmt.Printf("Shots fired:       %d\n", s.ShotsFired)
	fmt.Printf("Hits taken:        %d\n", s.HitsTaken)
	fmt.Printf("Time:              %s (%d ticks)\n", s.Duration.Round(time.Second), s.Ticks)
	if best > 0 {
		fmt.Printf("Best:              %d\n", best)
	}
	fmt.Printf("Seed:              %d\n", seed)
}
