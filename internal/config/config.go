// Package config loads plotter settings for the command-line tools and
// parses the numeric text they accept.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	spline "github.com/tphakala/go-natural-spline"
)

// Errors returned by the loader and parsers.
var (
	// ErrConfigFile indicates the settings file could not be read or decoded.
	ErrConfigFile = errors.New("invalid config file")

	// ErrNumber indicates text that is not a finite real number.
	ErrNumber = errors.New("not a finite number")
)

// hexDigits are the characters accepted in a color value.
const hexDigits = "0123456789abcdefABCDEF"

// File mirrors the YAML settings file. Absent keys leave the corresponding
// spline.Config field unchanged.
type File struct {
	Width        *int       `yaml:"width"`
	Height       *int       `yaml:"height"`
	HitRadius    *float64   `yaml:"hit_radius"`
	MarkerRadius *float64   `yaml:"marker_radius"`
	Background   string     `yaml:"background"`
	Trace        string     `yaml:"trace"`
	Transform    *Transform `yaml:"transform"`
}

// Transform mirrors spline.Transform.
type Transform struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
}

// Load reads a YAML settings file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return Parse(data)
}

// Parse decodes YAML settings. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty document has no overrides.
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return &f, nil
}

// Apply overlays the file's settings onto cfg and validates the result.
func (f *File) Apply(cfg *spline.Config) error {
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.HitRadius != nil {
		cfg.HitRadius = *f.HitRadius
	}
	if f.MarkerRadius != nil {
		cfg.MarkerRadius = *f.MarkerRadius
	}
	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return fmt.Errorf("%w: background: %w", ErrConfigFile, err)
		}
		cfg.Background = c
	}
	if f.Trace != "" {
		c, err := ParseColor(f.Trace)
		if err != nil {
			return fmt.Errorf("%w: trace: %w", ErrConfigFile, err)
		}
		cfg.Trace = c
	}
	if f.Transform != nil {
		cfg.Transform = spline.Transform{
			OriginX: f.Transform.OriginX,
			OriginY: f.Transform.OriginY,
			ScaleX:  f.Transform.ScaleX,
			ScaleY:  f.Transform.ScaleY,
		}
	}
	return cfg.Validate()
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if strings.Trim(hex, hexDigits) != "" {
		return color.RGBA{}, fmt.Errorf("color %q: not a hex number", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := cast.ToUint32E("0x" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseNumber converts query text to a finite float64. Anything else,
// including NaN, infinities and out-of-range values, is rejected so it never
// reaches the spline.
func ParseNumber(s string) (float64, error) {
	v, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return v, nil
}

// ParsePoint converts "x,y" to a control point.
func ParsePoint(s string) (spline.ControlPoint, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return spline.ControlPoint{}, fmt.Errorf("%w: point %q: want x,y", ErrNumber, s)
	}

	x, err := ParseNumber(xs)
	if err != nil {
		return spline.ControlPoint{}, err
	}
	y, err := ParseNumber(ys)
	if err != nil {
		return spline.ControlPoint{}, err
	}
	return spline.ControlPoint{X: x, Y: y}, nil
}
