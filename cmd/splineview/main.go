// Command splineview opens a window for editing a natural cubic spline.
//
// Left-click toggles a control point: clicking near an existing point removes
// it, anywhere else inserts one. Type a number and press Enter to evaluate the
// curve and its derivatives there. Escape clears everything.
//
// Usage:
//
//	splineview
//	splineview -config plot.yaml -v
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	spline "github.com/tphakala/go-natural-spline"
	"github.com/tphakala/go-natural-spline/internal/config"
	"github.com/tphakala/go-natural-spline/internal/session"
)

const (
	windowTitle = "Natural cubic spline"
	ticksPerSec = 60
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		verbose    = flag.Bool("v", false, "Log every rebuild to stderr")
	)
	flag.Parse()

	if *verbose {
		spline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := spline.DefaultConfig()
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := f.Apply(&cfg); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
	}

	p, err := spline.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create plotter: %v", err)
	}

	g := &game{s: session.New(p), width: cfg.Width, height: cfg.Height}
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(ticksPerSec)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Viewer stopped: %v", err)
	}
}
