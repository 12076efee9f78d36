package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadowflap/internal/registry"
	"github.com/vovakirdan/shadowflap/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for a start (default: shadowflap).

Examples:
  shadowflap scores
  shadowflap scores shadowflap_l2 --limit 20
  shadowflap scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shadowflap play %s' to set the first high score!\n", gameID)
		return nil
	}

	printScores(scores)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Won: %d  Average: %.1f  Best: %d\n",
			stats.GamesCount, stats.Wins, stats.AvgScore, stats.HighScore)
	}
	return nil
}

func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-5d  %-6s  %s\n",
			i+1, player, e.Score, e.Level+1, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
