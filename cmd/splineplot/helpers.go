package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	spline "github.com/tphakala/go-natural-spline"
	"github.com/tphakala/go-natural-spline/internal/config"
	"github.com/tphakala/go-natural-spline/internal/overlay"
)

// loadConfig starts from the defaults, applies the settings file if one is
// given and then the non-zero size overrides.
func loadConfig(path string, width, height int) (spline.Config, error) {
	cfg := spline.DefaultConfig()

	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, err
		}
	}

	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}
	return cfg, cfg.Validate()
}

// togglePoints parses every argument before toggling any of them.
func togglePoints(p *spline.Plotter, args []string) error {
	pts := make([]spline.ControlPoint, 0, len(args))
	for _, a := range args {
		pt, err := config.ParsePoint(a)
		if err != nil {
			return err
		}
		pts = append(pts, pt)
	}

	for _, pt := range pts {
		p.TogglePoint(pt)
	}
	return nil
}

func printSummary(w io.Writer, p *spline.Plotter) {
	info := spline.GetInfo(p)
	fmt.Fprintf(w, "Spline:\n")
	fmt.Fprintf(w, "  Points: %d\n", info.Points)
	fmt.Fprintf(w, "  Segments: %d\n", info.Segments)
	fmt.Fprintf(w, "  Buffer: %dx%d (%d columns drawn)\n", info.Width, info.Height, info.Drawn)
	fmt.Fprintf(w, "  Pipeline: %s\n", strings.Join(info.Stages, " -> "))
	fmt.Fprintf(w, "  SIMD: %s\n", info.SIMDType)

	st, ok := p.Stats()
	if !ok {
		fmt.Fprintf(w, "  No curve: at least 2 points are required\n")
		return
	}
	fmt.Fprintf(w, "  Range: [%g, %g]\n", st.Min, st.Max)
	fmt.Fprintf(w, "  Mean: %g\n", st.Mean)
	fmt.Fprintf(w, "  Bending energy: %g\n", st.BendingEnergy)
}

func printQuery(w io.Writer, q spline.Query) {
	for _, line := range overlay.QueryLines(q) {
		fmt.Fprintln(w, line)
	}
}

// writePlot encodes the rendered curve with its point and query marks.
func writePlot(path string, p *spline.Plotter, q *spline.Query) (err error) {
	img := p.Image()
	overlay.Draw(img, overlay.SceneFor(p, q))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return bw.Flush()
}
