// Package main is the softboard demo: it renders the active layout in
// a terminal and drives the full resolution pipeline from mouse events,
// showing candidate ranking, switcher state, and the locale indicator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/config"
	"github.com/dshills/softboard/internal/correction"
	"github.com/dshills/softboard/internal/layout"
	"github.com/dshills/softboard/internal/locale"
	"github.com/dshills/softboard/internal/tracker"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		layoutName  string
		debug       bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "softboard.toml", "Path to settings file")
	flag.StringVar(&configPath, "c", "softboard.toml", "Path to settings file (shorthand)")
	flag.StringVar(&layoutName, "layout", "", "Layout name, overriding the settings file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging to stderr")
	flag.BoolVar(&debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("softboard %s (%s)\n", version, commit)
		return 0
	}

	logger := zap.NewNop()
	if debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
			return 1
		}
		defer func() { _ = logger.Sync() }()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if layoutName != "" {
		cfg.Layout = layoutName
	}

	boards, err := newBoardSource(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	kbd, err := boards.Keyboard(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ring := locale.NewRing(cfg.Locales)
	ring.SetIndex(cfg.LocaleIndex)

	ui, err := newUI(cfg.Layout, kbd, boards, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ui.Close()

	tr := tracker.New(tracker.Options{
		Geometry: kbd.Geometry,
		Locales:  ring,
		Correction: correction.Config{
			VerticalCorrection: cfg.VerticalCorrection,
			DragFraction:       cfg.DragFraction,
			Frequency:          cfg.Frequency(),
			Logger:             logger,
		},
		Callbacks: tracker.Callbacks{
			OnKeyCommitted:        ui.KeyCommitted,
			OnModeChangeRequested: ui.ModeChanged,
			OnLocaleChanged:       ui.LocaleChanged,
		},
		Logger: logger,
	})

	// Watch the layout directory so edits show up without a restart:
	// a change purges the keyboard cache and rebuilds the active view.
	if watcher, werr := layout.NewWatcher(ui.LayoutFileChanged, logger); werr != nil {
		logger.Warn("layout watcher unavailable", zap.Error(werr))
	} else {
		defer watcher.Close()
		if werr := watcher.Watch(cfg.LayoutDir); werr != nil {
			logger.Debug("layout directory not watched", zap.Error(werr))
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)
	}

	if err := ui.Run(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	snap := tr.Metrics().GetSnapshot()
	fmt.Printf("touches=%d commits=%d no-hits=%d locale-changes=%d avg-latency=%s\n",
		snap.Touches, snap.Commits, snap.NoHits, snap.LocaleChanges, snap.AverageLatency)
	return 0
}
