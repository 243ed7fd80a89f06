// tsee runs the terminal scrolling engine demo scenes.
//
// Usage:
//
//	tsee list                  - List available scenes
//	tsee run <scene>           - Run a scene in the terminal
//	tsee run <scene> --headless --frames 300
//	tsee sessions              - Browse recorded runs
//
// Global flags:
//
//	--fps <rate>      - Override the configured frame rate
//	--config <path>   - Engine config file (default: search ~/.tsee, ./configs)
//	--db <path>       - Session database (default: ~/.tsee/tsee.db)
//	--log <path>      - Log file (default: ~/.tsee/tsee.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tsee/internal/scenes/platformer"
	_ "github.com/vovakirdan/tsee/internal/scenes/room"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tsee",
	Short: "TSEE - a side-scrolling engine for the terminal",
	Long: `TSEE runs small scrolling scenes in your terminal. The camera follows
the player once it leaves the dead zone in the middle of the screen.

Available commands:
  list      - Show all available scenes
  run       - Run a scene
  sessions  - Browse recorded runs

Examples:
  tsee list
  tsee run platformer
  tsee run room --fps 30
  tsee sessions`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tsee/tsee.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.tsee/tsee.log", "Path to log file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sessionsCmd)
}
