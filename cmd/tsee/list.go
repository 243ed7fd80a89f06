package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsee/internal/registry"
	"github.com/vovakirdan/tsee/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered scenes with their run history",
	Long: `Shows every scene registered with the engine together with how often
it was run, its best recorded framerate and when it last ran.`,
	Run: runList,
}

// statsFunc looks up recorded runs for a scene.
type statsFunc func(sceneID string) (*storage.SceneStats, error)

func runList(_ *cobra.Command, _ []string) {
	var stats statsFunc
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("session database unavailable, listing without history", "error", err)
	} else {
		defer store.Close()
		stats = store.SceneStats
	}
	printScenes(os.Stdout, registry.List(), stats)
}

func printScenes(w io.Writer, scenes []registry.SceneInfo, stats statsFunc) {
	if len(scenes) == 0 {
		fmt.Fprintln(w, "No scenes available.")
		return
	}

	header := []string{"ID", "Title", "Runs", "Best FPS", "Last run"}
	rows := make([][]string, 0, len(scenes))
	for _, s := range scenes {
		rows = append(rows, sceneRow(s, stats))
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	fmt.Fprintln(w, "Available scenes:")
	fmt.Fprintln(w)
	writeRow(w, widths, header)
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	writeRow(w, widths, rule)
	for _, row := range rows {
		writeRow(w, widths, row)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tsee run <id>' to start a scene.")
}

// sceneRow formats one scene. Without history, or for a scene that never
// ran, the stat columns show a dash.
func sceneRow(s registry.SceneInfo, stats statsFunc) []string {
	row := []string{s.ID, s.Title, "-", "-", "-"}
	if stats == nil {
		return row
	}
	st, err := stats(s.ID)
	if err != nil {
		log.Debug("no stats for scene", "scene", s.ID, "error", err)
		return row
	}
	if st.Runs == 0 {
		row[2] = "0"
		return row
	}
	row[2] = fmt.Sprintf("%d", st.Runs)
	row[3] = fmt.Sprintf("%.1f", st.BestFramerate)
	if !st.LastPlayed.IsZero() {
		row[4] = st.LastPlayed.Local().Format(time.DateTime)
	}
	return row
}

func writeRow(w io.Writer, widths []int, cells []string) {
	var sb strings.Builder
	sb.WriteString(" ")
	for i, cell := range cells {
		if i == len(cells)-1 {
			sb.WriteString(" " + cell)
			break
		}
		fmt.Fprintf(&sb, " %-*s ", widths[i], cell)
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
}
