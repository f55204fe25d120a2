package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	spline "github.com/tphakala/go-natural-spline"
	"github.com/tphakala/go-natural-spline/internal/session"
)

// game adapts a session to ebiten's update/draw loop.
type game struct {
	s             *session.Session
	width, height int

	screen *ebiten.Image
	chars  []rune
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	g.s.Hover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c := g.s.Click(x, y)
		spline.Logger().Debug("click", slog.Int("x", x), slog.Int("y", y), slog.String("change", c.Kind.String()))
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.s.Type(g.chars)

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.s.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		// A rejected query keeps its text on screen for correction.
		_ = g.s.Submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.s.Reset()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.width, g.height)
	}
	g.screen.WritePixels(g.s.Frame().Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
