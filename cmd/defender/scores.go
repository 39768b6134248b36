package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
	flagScoresYes   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the best scores and the most recent runs.

In a terminal this opens an interactive table (tab switches between
scores and runs). Use --plain, or pipe the output, for a text listing.

Examples:
  defender scores
  defender scores --plain --limit 20
  defender scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text listing instead of the interactive table")
	scoresCmd.Flags().BoolVarP(&flagScoresYes, "yes", "y", false, "Do not ask before clearing")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		clearScores(store)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, defender.ID, "Space Defender", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store) {
	if !flagScoresYes && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Delete all Space Defender scores and runs? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := store.ClearScores(defender.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Scores cleared.")
}

func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(defender.ID, limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Space Defender")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-12s  %s\n", i+1, e.Score, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(defender.ID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Accuracy: %.0f%%  Hits taken: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Accuracy()*100, stats.HitsTaken)
	}
	return nil
}
