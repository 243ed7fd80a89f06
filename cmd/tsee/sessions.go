package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsee/internal/platform/tui"
	"github.com/vovakirdan/tsee/internal/storage"
)

var flagClear string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse recorded runs",
	Long: `Open an interactive table of recorded runs per scene, with frame
counts, average frame time and framerate.

Examples:
  tsee sessions
  tsee sessions --clear platformer
  tsee sessions --clear all`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagClear, "clear", "", "Delete recorded runs for a scene ('all' for every scene)")
}

func runSessions(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	if flagClear != "" {
		sceneID := flagClear
		if sceneID == "all" {
			sceneID = ""
		}
		if err := store.ClearSessions(sceneID); err != nil {
			return err
		}
		fmt.Println("Sessions cleared.")
		return nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return tui.RunSessions(store, width, height)
}
