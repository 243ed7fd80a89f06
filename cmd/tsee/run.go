package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsee/internal/animation"
	"github.com/vovakirdan/tsee/internal/config"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/physics"
	"github.com/vovakirdan/tsee/internal/platform"
	"github.com/vovakirdan/tsee/internal/platform/console"
	"github.com/vovakirdan/tsee/internal/platform/headless"
	"github.com/vovakirdan/tsee/internal/platform/tui"
	"github.com/vovakirdan/tsee/internal/registry"
	"github.com/vovakirdan/tsee/internal/resource"
	"github.com/vovakirdan/tsee/internal/storage"
)

var (
	flagHeadless bool
	flagFrames   uint64
	flagBackend  string
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene",
	Long: `Start the engine with the specified scene.

Controls:
  Left/Right/A/D   - Walk
  Up/W/Space       - Jump (hold for a higher jump)
  Tab              - Cycle toolbar menus
  F3/Backtick      - Toggle debug overlay
  Q/Esc/Ctrl+C     - Quit

The default back-end draws through Bubble Tea; --backend console draws
through tcell instead. With --headless the scene runs without a terminal for --frames frames and
the last frame is printed to stdout.

Examples:
  tsee run platformer
  tsee run room --fps 30
  tsee run platformer --backend console
  tsee run platformer --headless --frames 120`,
	Args: cobra.ExactArgs(1),
	RunE: runScene,
}

func init() {
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal")
	runCmd.Flags().Uint64Var(&flagFrames, "frames", 300, "Frames to run in headless mode")
	runCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Terminal back-end: tui or console")
}

func runScene(_ *cobra.Command, args []string) error {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		return fmt.Errorf("unknown scene %q, run 'tsee list' to see available scenes", sceneID)
	}

	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Window.FPS = flagFPS
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		return err
	}

	subs, hr, err := buildSubsystems(cfg)
	if err != nil {
		return err
	}
	e, err := engine.Create(width, height,
		engine.WithLogger(logger),
		engine.WithSubsystems(subs),
	)
	if err != nil {
		return err
	}
	cfg.Apply(e)

	if err := scene.Populate(e); err != nil {
		e.Close()
		return err
	}

	// Continue without storage; the run itself does not need it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("session database unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	start := time.Now()
	if err := e.InitAll(); err != nil {
		record(store, logger, storage.Session{
			SceneID:    sceneID,
			Duration:   time.Since(start),
			ExitReason: "init_failed",
			Backend:    backendName(),
		})
		return err
	}

	e.MainLoop()

	record(store, logger, sessionOf(e, sceneID, time.Since(start)))
	e.Close()

	if hr != nil {
		fmt.Println(hr.Last)
	}
	return nil
}

// buildSubsystems wires the terminal or headless back-end. The headless
// renderer is returned so its last frame can be printed.
func buildSubsystems(cfg config.EngineConfig) (engine.Subsystems, *headless.Renderer, error) {
	rm := resource.NewManager(resource.FileLoader{}, cfg.FontSpecs())
	subs := engine.Subsystems{
		Resources: rm,
		Text:      platform.NewText(rm),
		Physics:   physics.Stepper{},
		Animation: animation.New(),
	}

	if flagHeadless {
		hr := &headless.Renderer{}
		driver := &headless.Driver{MaxFrames: flagFrames}
		subs.Renderer = hr
		subs.Events = driver
		subs.Input = driver
		subs.UI = &platform.UIBuilder{}
		return subs, hr, nil
	}

	switch flagBackend {
	case "tui":
		keys := tui.DefaultKeyMap()
		t := tui.NewTerminal()
		in := tui.NewInput(t, keys)
		subs.Renderer = tui.NewRenderer(t)
		subs.Events = in
		subs.Input = in
		subs.UI = &platform.UIBuilder{HelpLine: tui.HelpLine(keys)}
	case "console":
		t := console.NewTerminal(nil)
		in := console.NewInput(t)
		subs.Renderer = console.NewRenderer(t)
		subs.Events = in
		subs.Input = in
		subs.UI = &platform.UIBuilder{HelpLine: console.HelpLine}
	default:
		return subs, nil, fmt.Errorf("unknown back-end %q, want tui or console", flagBackend)
	}
	return subs, nil, nil
}

func backendName() string {
	if flagHeadless {
		return "headless"
	}
	return flagBackend
}

func sessionOf(e *engine.Engine, sceneID string, d time.Duration) storage.Session {
	sess := storage.Session{
		SceneID:    sceneID,
		Duration:   d,
		ExitReason: "quit",
		Backend:    backendName(),
	}
	if e.Debug != nil {
		sess.Frames = int64(e.Debug.Frames)
		sess.Framerate = e.Debug.Framerate
		if sess.Frames > 0 {
			sess.AvgFrameMS = float64(d.Milliseconds()) / float64(sess.Frames)
		}
	}
	return sess
}

func record(store *storage.Store, logger *log.Logger, sess storage.Session) {
	if store == nil {
		return
	}
	if _, err := store.SaveSession(sess); err != nil {
		logger.Warn("could not record session", "error", err)
	}
}

// openLog sends engine logs to a file so they do not tear the terminal.
func openLog(path string) (*log.Logger, func(), error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tsee",
	})
	return logger, func() { f.Close() }, nil
}
