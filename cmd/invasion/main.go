// invasion is a terminal arcade shooter: hold off a descending swarm before
// it reaches the ground.
//
// Usage:
//
//	invasion                    - Start the launcher menu
//	invasion play               - Play right away
//	invasion serve              - Start SSH server for remote play
//	invasion recordings         - Browse and replay saved sessions
//	invasion replay <id>        - Replay a saved session
//	invasion config             - Print the default tuning file
//	invasion list               - List registered games
//
// Global flags:
//
//	--fps <rate>        - Tick rate; must match the game (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.invasion/recordings.db)
//	--config <path>     - Load tuning from a YAML file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Where the log goes (default: ~/.invasion/invasion.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/games/invasion"
	"github.com/vovakirdan/tui-invasion/internal/logging"
	"github.com/vovakirdan/tui-invasion/internal/registry"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

const gameID = "invasion"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger  *log.Logger
	logFile io.Closer
)

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
	Use:   "invasion",
	Short: "Invasion - hold off the swarm in your terminal",
	Long: `Invasion is a terminal arcade shooter. A swarm of animals marches
across the sky and steps down whenever it reaches a wall. Shoot them
all before they land.

Available commands:
  play        - Play right away
  serve       - Start SSH server for remote play
  recordings  - Browse and replay saved sessions
  replay      - Replay a saved session
  config      - Print the default tuning file
  list        - Show registered games

Run without a command to open the launcher menu.

Examples:
  invasion
  invasion play --record
  invasion serve --ssh :2222
  invasion replay 12 --headless`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second); the game only accepts its own rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invasion/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file path (- for stderr)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the tuning file and opens the log before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if err := registry.CheckTickRate(gameID, flagFPS); err != nil {
		return fmt.Errorf("--fps: %w", err)
	}

	if flagConfig != "" {
		if _, err := config.LoadInvasion(flagConfig); err != nil {
			return err
		}
	}
	invasion.SetConfigPath(flagConfig)

	var w io.Writer = os.Stderr
	if flagLogFile != "-" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return err
		}
		w = f
		logFile = f
	}

	l, err := logging.New(w, flagLogLevel, gameID)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// runtimeConfig builds the session config from the flags and the terminal size.
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

// openStore opens the recordings database. Interactive commands keep going
// without it; required reports the failure as an error instead.
func openStore(required bool) (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err == nil {
		return store, nil
	}
	if required {
		return nil, err
	}
	logger.Warn("could not open recordings database", "error", err)
	fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
	return nil, nil
}

// localPlayer names recordings made from this machine.
func localPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
