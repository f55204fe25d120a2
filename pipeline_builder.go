package spline

import (
	"fmt"

	"github.com/tphakala/go-natural-spline/internal/pipeline"
	"github.com/tphakala/go-natural-spline/internal/raster"
)

// buildPipeline constructs the rebuild pipeline for a validated configuration.
func buildPipeline(config *Config) (*pipeline.Pipeline, error) {
	r := &raster.Rasterizer{
		Background: config.Background,
		Trace:      config.Trace,
		Transform:  config.Transform,
	}

	p, err := pipeline.New(r, config.Width, config.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}
	return p, nil
}
