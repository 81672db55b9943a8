// puyo is a falling-pair puzzle game for the terminal.
//
// Usage:
//
//	puyo                  - Start the title menu
//	puyo play             - Play immediately
//	puyo menu             - Start the title menu
//	puyo serve            - Start SSH server for remote play
//	puyo scores           - Show high scores
//	puyo settings         - Show or change saved settings
//	puyo list             - List available games
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	// Game flags shared by play, menu and serve
	flagConfig     string
	flagDifficulty string
)

// logFile is closed on exit when --log-file is set.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puyo",
	Short: "Puyo - a falling-pair puzzle game for your terminal",
	Long: `Puyo drops pairs of colored blobs into a 6x12 well. Connect four or
more of the same color to pop them; blobs above fall and may pop again,
building chains worth more points.

Available commands:
  play      - Start a game immediately
  menu      - Title menu with difficulty and start level
  serve     - Start SSH server for remote play
  scores    - View high scores
  settings  - View or change saved settings
  list      - Show all available games

Examples:
  puyo
  puyo play --difficulty hard --level 5
  puyo serve --ssh :2222
  puyo scores --limit 20
  puyo play --log-file puyo.log --debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setupLogging configures the default logger. The TUI owns the terminal, so
// without --log-file only the SSH server logs to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
		log.SetReportTimestamp(true)
	case cmd == serveCmd:
		log.SetOutput(os.Stderr)
		log.SetReportTimestamp(true)
	default:
		log.SetOutput(io.Discard)
	}

	if err := applyDifficulty(); err != nil {
		return err
	}
	puyo.SetConfigPath(flagConfig)
	return nil
}

// applyDifficulty validates --difficulty before any game is created.
func applyDifficulty() error {
	if flagDifficulty == "" {
		return nil
	}
	if !puyo.SetDifficultyPreset(flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}
