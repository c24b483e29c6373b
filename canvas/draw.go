package canvas

import "image/color"

// Rasterizer draws pixel-space primitives. Out-of-range coordinates are
// passed through; clipping is the rasterizer's job.
type Rasterizer interface {
	StrokeLine(a, b Pixel, clr color.Color)
	FillRect(x, y, w, h int, clr color.Color)
}

// MinSquareSide keeps arrowheads visible when zoomed far out.
const MinSquareSide = 3

// Stats counts what a Drawer emitted.
type Stats struct {
	Segments int
	Skipped  int
	Squares  int
}

// Drawer turns mathematical primitives into rasterizer calls.
type Drawer struct {
	r     Rasterizer
	surf  Surface
	stats Stats
}

func NewDrawer(r Rasterizer, s Surface) *Drawer {
	return &Drawer{r: r, surf: s}
}

func (d *Drawer) Surface() Surface { return d.surf }

func (d *Drawer) Stats() Stats { return d.stats }

// DrawSegment strokes a line unless both deltas are below one pixel.
func (d *Drawer) DrawSegment(a, b Pixel, clr color.Color) {
	if abs(b.X-a.X) < 1 && abs(b.Y-a.Y) < 1 {
		d.stats.Skipped++
		return
	}
	d.stats.Segments++
	d.r.StrokeLine(a, b, clr)
}

// DrawSegmentMath transforms both endpoints under v and draws the segment.
func (d *Drawer) DrawSegmentMath(a, b Point, v View, clr color.Color) {
	d.DrawSegment(ToPixel(a, v, d.surf), ToPixel(b, v, d.surf), clr)
}

// DrawSquare fills the square of half side half around center. Each
// side is at least MinSquareSide pixels.
func (d *Drawer) DrawSquare(center Point, half float64, v View, clr color.Color) {
	tl := ToPixel(Point{X: center.X - half, Y: center.Y - half}, v, d.surf)
	br := ToPixel(Point{X: center.X + half, Y: center.Y + half}, v, d.surf)
	d.stats.Squares++
	d.r.FillRect(tl.X, tl.Y, max(br.X-tl.X, MinSquareSide), max(br.Y-tl.Y, MinSquareSide), clr)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
