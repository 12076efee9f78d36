// shadowflap runs the ShadowFlap side-scroller in the terminal.
//
// Usage:
//
//	shadowflap list              - List available starts
//	shadowflap play [game]       - Play (default: shadowflap)
//	shadowflap menu              - Start menu to pick interactively
//	shadowflap serve             - Start SSH server for remote play
//	shadowflap scores [game]     - Show high scores
//	shadowflap config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shadowflap/internal/core"
	"github.com/vovakirdan/shadowflap/internal/registry"
	"github.com/vovakirdan/shadowflap/internal/storage"

	// Import the game to register it
	_ "github.com/vovakirdan/shadowflap/internal/games/shadowflap"
)

const defaultGameID = "shadowflap"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "shadowflap",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadowflap",
	Short: "ShadowFlap - flap through pipe gates in your terminal",
	Long: `ShadowFlap is a side-scroller: keep the bird airborne and fly it
through the gaps between pipes. Level 2 adds steel pipes with blinking
flames, and rocks and bombs you can pick up and shoot.

Available commands:
  list     - Show the available starts
  play     - Play directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  shadowflap play
  shadowflap play shadowflap_l2 --seed 42
  shadowflap menu
  shadowflap serve --ssh :2222 --metrics 127.0.0.1:9090
  shadowflap scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) (string, error) {
	id := defaultGameID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'shadowflap list' to see available games", id)
	}
	return id, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the leaderboard; play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
