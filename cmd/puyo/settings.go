package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var (
	flagGhost bool
	flagSFX   float64
	flagBGM   float64
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Show the saved player settings, or change them with flags.
Unsaved settings come from the game config.

Examples:
  puyo settings
  puyo settings --ghost=false
  puyo settings --sfx 0.8`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagGhost, "ghost", true, "Show the ghost piece")
	settingsCmd.Flags().Float64Var(&flagSFX, "sfx", 0.5, "Sound effect volume (0-1)")
	settingsCmd.Flags().Float64Var(&flagBGM, "bgm", 0, "Music volume (0-1)")
}

func runSettings(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	settings, found, err := store.LoadSettings(puyo.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return
	}
	if !found {
		cfg, cfgErr := config.LoadPuyo(flagConfig)
		if cfgErr != nil {
			cfg = config.DefaultPuyoConfig()
		}
		settings = storage.Settings{
			ShowGhost: cfg.Settings.ShowGhost,
			SFXVolume: cfg.Settings.SFXVolume,
			BGMVolume: cfg.Settings.BGMVolume,
		}
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("ghost") {
		settings.ShowGhost = flagGhost
		changed = true
	}
	if flags.Changed("sfx") {
		settings.SFXVolume = core.ClampF(flagSFX, 0, 1)
		changed = true
	}
	if flags.Changed("bgm") {
		settings.BGMVolume = core.ClampF(flagBGM, 0, 1)
		changed = true
	}

	if changed {
		if err := store.SaveSettings(puyo.GameID, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return
		}
		fmt.Println("Settings saved.")
		fmt.Println()
	} else if !found {
		fmt.Println("No saved settings, showing config defaults.")
		fmt.Println()
	}

	fmt.Printf("  Ghost piece:  %s\n", onOff(settings.ShowGhost))
	fmt.Printf("  SFX volume:   %.0f%%\n", settings.SFXVolume*100)
	fmt.Printf("  Music volume: %.0f%%\n", settings.BGMVolume*100)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
