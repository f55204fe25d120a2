// Package session holds the state of an interactive plotting session: the
// plotter, the pointer position, the query being typed and the last
// successful query. It has no window system dependency; a front end feeds
// it input events and draws the frames it composes.
package session

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"unicode"

	spline "github.com/tphakala/go-natural-spline"
	"github.com/tphakala/go-natural-spline/internal/config"
	"github.com/tphakala/go-natural-spline/internal/overlay"
)

// maxInput bounds the query text length.
const maxInput = 64

// Session is an interactive plotting session. It is not safe for concurrent
// use; front ends drive it from their event loop.
type Session struct {
	plotter *spline.Plotter

	mouseX, mouseY int
	input          []rune

	queryX   float64
	hasQuery bool

	frame *image.RGBA
	dirty bool
}

// New starts a session over p.
func New(p *spline.Plotter) *Session {
	return &Session{plotter: p, dirty: true}
}

// Plotter returns the session's plotter.
func (s *Session) Plotter() *spline.Plotter {
	return s.plotter
}

// Click toggles a point at buffer coordinates (x, y).
func (s *Session) Click(x, y int) spline.Change {
	c := s.plotter.Toggle(float64(x), float64(y))
	if c.Modified() {
		s.dirty = true
	}
	return c
}

// Hover records the pointer position in buffer coordinates.
func (s *Session) Hover(x, y int) {
	if x == s.mouseX && y == s.mouseY {
		return
	}
	s.mouseX, s.mouseY = x, y
	s.dirty = true
}

// Type appends printable ASCII characters to the query text. Other runes are
// dropped.
func (s *Session) Type(rs []rune) {
	for _, r := range rs {
		if r >= unicode.MaxASCII || !unicode.IsPrint(r) || len(s.input) >= maxInput {
			continue
		}
		s.input = append(s.input, r)
		s.dirty = true
	}
}

// Backspace deletes the last character of the query text.
func (s *Session) Backspace() {
	if len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
	s.dirty = true
}

// Input returns the query text typed so far.
func (s *Session) Input() string {
	return string(s.input)
}

// Submit evaluates the spline at the typed abscissa. On success the text is
// cleared and the query becomes current; on failure the text is kept so it
// can be corrected.
func (s *Session) Submit() error {
	x, err := config.ParseNumber(string(s.input))
	if err != nil {
		spline.Logger().Debug("query rejected", slog.String("input", string(s.input)), slog.Any("error", err))
		return err
	}
	if !s.plotter.Ready() {
		return fmt.Errorf("query %g: %w", x, spline.ErrTooFewPoints)
	}

	s.queryX, s.hasQuery = x, true
	s.input = s.input[:0]
	s.dirty = true
	return nil
}

// Query re-evaluates the current query against the current curve. ok is false
// when nothing has been queried yet or the curve no longer exists.
func (s *Session) Query() (spline.Query, bool) {
	if !s.hasQuery {
		return spline.Query{}, false
	}
	return s.plotter.Query(s.queryX)
}

// Lines returns the status text: pointer position in spline space, pending
// input and the current query readout.
func (s *Session) Lines() []string {
	cfg := s.plotter.Config()
	mx, my := cfg.Transform.Inverse(float64(s.mouseX), float64(s.mouseY), cfg.Height)
	lines := []string{
		fmt.Sprintf("mouse position: %g, %g", mx, my),
		"x = " + strings.TrimSpace(string(s.input)),
	}
	if q, ok := s.Query(); ok {
		lines = append(lines, overlay.QueryLines(q)...)
	}
	return lines
}

// Frame returns the rendered curve with every mark drawn over it. The image
// is reused until the session changes, so callers must not modify it.
func (s *Session) Frame() *image.RGBA {
	if !s.dirty && s.frame != nil {
		return s.frame
	}

	var scene overlay.Scene
	if q, ok := s.Query(); ok {
		scene = overlay.SceneFor(s.plotter, &q)
	} else {
		scene = overlay.SceneFor(s.plotter, nil)
	}
	scene.Lines = s.Lines()

	s.frame = s.plotter.Image()
	overlay.Draw(s.frame, scene)
	s.dirty = false
	return s.frame
}

// Reset clears the points and the query state.
func (s *Session) Reset() {
	s.plotter.Reset()
	s.input = s.input[:0]
	s.hasQuery = false
	s.dirty = true
}
