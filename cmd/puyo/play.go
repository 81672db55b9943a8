package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing immediately, skipping the title menu.

Controls:
  Left/Right, A/D  - Move
  Up/W/X, Z        - Rotate clockwise, counter-clockwise
  Down/S           - Soft drop
  Space            - Hard drop (also starts the game)
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  G                - Toggle ghost piece
  +/-              - Sound volume
  B                - Back (while paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gravity and lock delay, four colors
  normal - Config as loaded
  hard   - Faster gravity and lock delay, five colors
  fixed  - No level progression

Examples:
  puyo play
  puyo play --difficulty hard
  puyo play --level 5
  puyo play --config ./my-puyo.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level (gravity speed)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := puyo.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puyo list' to see available games.")
		os.Exit(1)
	}

	puyo.SetStartLevel(flagLevel - 1)

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
