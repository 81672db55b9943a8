package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the game in interactive menu mode. This is also what running
puyo without a command does.

Pick a difficulty and a start level, then play. After leaving a game
you return to the menu.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Change difficulty or start level
  Enter        - Select
  Tab          - High scores
  Q            - Quit

Examples:
  puyo menu
  puyo menu --fps 30
  puyo menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	opts := tui.MenuOptions{
		GameID:   puyo.GameID,
		Preset:   config.DifficultyNormal,
		MaxLevel: maxLevel(),
	}
	if p, ok := config.ParsePreset(flagDifficulty); ok {
		opts.Preset = p
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the last selection
		cfg = menuResult.Config
		opts.Preset = menuResult.Preset
		opts.StartLevel = menuResult.StartLevel

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(opts.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}
		if g, ok := game.(*puyo.Game); ok {
			g.Configure(opts.Preset, opts.StartLevel)
		}

		// Fresh seed for each game unless one was forced
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, runErr := tui.Run(game, store, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !goBack {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}

// maxLevel is the highest selectable start level of the loaded config.
func maxLevel() int {
	cfg, err := config.LoadPuyo(flagConfig)
	if err != nil {
		cfg = config.DefaultPuyoConfig()
	}
	return cfg.Rules.MaxLevel
}
