// Command splineplot fits a natural cubic spline through control points given
// on the command line, prints a readout and optionally writes the plot as PNG.
//
// Usage:
//
//	splineplot 100,200 400,600 800,300
//	splineplot -query 250 -out plot.png 100,200 400,600 800,300
//	splineplot -config plot.yaml -v 0,0 10,5 20,0
//
// Points are "x,y" pairs in plot space, y growing upward. Each point is
// toggled in order, so repeating a point (or one within the hit radius of
// an earlier one) removes it again.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	spline "github.com/tphakala/go-natural-spline"
	"github.com/tphakala/go-natural-spline/internal/config"
)

func main() {
	// Command-line flags
	var (
		configPath = flag.String("config", "", "YAML settings file")
		output     = flag.String("out", defaultOutput, "Write the annotated plot to this PNG file")
		query      = flag.String("query", defaultQuery, "Evaluate the spline at this x")
		width      = flag.Int("width", defaultWidth, "Override the buffer width")
		height     = flag.Int("height", defaultHeight, "Override the buffer height")
		verbose    = flag.Bool("v", false, "Log every rebuild to stderr")
	)
	flag.Parse()

	if *verbose {
		spline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	p, err := spline.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create plotter: %v", err)
	}

	if err := togglePoints(p, flag.Args()); err != nil {
		log.Fatalf("Invalid point: %v", err)
	}

	printSummary(os.Stdout, p)

	var q *spline.Query
	if *query != "" {
		x, err := config.ParseNumber(*query)
		if err != nil {
			log.Fatalf("Invalid query: %v", err)
		}
		r, ok := p.Query(x)
		if !ok {
			log.Fatalf("Cannot query: %v", spline.ErrTooFewPoints)
		}
		printQuery(os.Stdout, r)
		q = &r
	}

	if *output != "" {
		if err := writePlot(*output, p, q); err != nil {
			log.Fatalf("Failed to write plot: %v", err)
		}
		fmt.Printf("Wrote %s\n", *output)
	}
}
