package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"slope-field/canvas"
)

var (
	colorText     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorPanel    = color.RGBA{40, 40, 40, 220}
	colorErrorMsg = color.RGBA{255, 200, 50, 255}
)

// Status is what the overlay reports about the current frame.
type Status struct {
	View    canvas.View
	Spacing float64
	Cursor  canvas.Point
	Stats   canvas.Stats
}

// StatusText formats s for the overlay.
func StatusText(s Status) string {
	return fmt.Sprintf(
		"View: (%.4f, %.4f) Zoom: %.3f\n"+
			"Grid: %.4f\n"+
			"Cursor: (%.3f, %.3f)\n"+
			"Lines: %d (skipped %d) Squares: %d",
		s.View.X, s.View.Y, s.View.Zoom,
		s.Spacing*s.View.Zoom,
		s.Cursor.X, s.Cursor.Y,
		s.Stats.Segments, s.Stats.Skipped, s.Stats.Squares,
	)
}

// HUD draws the status block and, when set, an error panel.
type HUD struct {
	face font.Face
	err  string
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// SetError shows msg in the error panel until it is replaced.
func (h *HUD) SetError(msg string) { h.err = msg }

func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	DrawTextLines(screen, h.face, StatusText(s), 10, 10, colorText)
	if h.err == "" {
		return
	}
	b := screen.Bounds()
	pw, ph := 360, 60
	x := b.Dx() - pw - 10
	y := b.Dy() - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), colorPanel, false)
	DrawTextLines(screen, h.face, h.err, x+8, y+8, colorErrorMsg)
}
