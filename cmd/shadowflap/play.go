package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shadowflap/internal/platform/tui"
	"github.com/vovakirdan/shadowflap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play ShadowFlap",
	Long: `Start playing. Without an argument the game starts at level 1;
"shadowflap_l2" starts directly at level 2.

Controls:
  Space/Up/W - Flap (also starts a level)
  S          - Shoot the carried rock or bomb
  L / K      - Speed the world up / down
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  shadowflap play
  shadowflap play shadowflap_l2
  shadowflap play --seed 42 --fps 30
  shadowflap play --config ./my-shadowflap.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(gameID, flagConfig)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), tui.ModelOptions{}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
