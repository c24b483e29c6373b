package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen rasterizes onto an ebiten image with 1px aliased strokes.
type Screen struct {
	Image *ebiten.Image
}

func (s Screen) StrokeLine(a, b Pixel, clr color.Color) {
	vector.StrokeLine(s.Image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
}

func (s Screen) FillRect(x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), clr, false)
}
