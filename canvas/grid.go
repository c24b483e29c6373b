package canvas

import (
	"image/color"
	"math"
)

const (
	MinGridSpacing = 0.1
	MaxGridSpacing = 0.2
)

// GridSpacing returns the distance between grid lines in normalized
// surface units. Starting from 1/zoom it doubles or halves until the
// value lands in [MinGridSpacing, MaxGridSpacing], so line density stays
// bounded at every zoom level.
func GridSpacing(zoom float64) float64 {
	spacing := 1.0 / ClampZoom(zoom)
	for spacing < MinGridSpacing {
		spacing *= 2
	}
	for spacing > MaxGridSpacing {
		spacing /= 2
	}
	return spacing
}

// GridOffset is the phase of the grid along one axis, in [0, spacing).
// It keeps lines pinned to absolute coordinates while the view pans.
func GridOffset(pos, zoom, spacing float64) float64 {
	return math.Mod(math.Mod(pos/zoom, spacing)+spacing, spacing)
}

// GridLines is the number of lines drawn in each direction.
func GridLines(spacing float64) int {
	return 2*int(math.Ceil(1/spacing)) + 1
}

// DrawGrid draws the horizontal and vertical grid lines for v.
func DrawGrid(d *Drawer, v View, clr color.Color) {
	s := d.Surface()
	spacing := GridSpacing(v.Zoom)
	offX := GridOffset(v.X, v.Zoom, spacing)
	offY := GridOffset(v.Y, v.Zoom, spacing)
	n := GridLines(spacing) / 2

	// Horizontal
	for i := -n; i <= n; i++ {
		y := float64(i) * spacing
		d.DrawSegment(
			ToPixelShifted(Point{X: -1, Y: y}, Point{Y: offY}, s),
			ToPixelShifted(Point{X: 1, Y: y}, Point{Y: offY}, s),
			clr)
	}

	// Vertical
	for i := -n; i <= n; i++ {
		x := float64(i) * spacing
		d.DrawSegment(
			ToPixelShifted(Point{X: x, Y: -1}, Point{X: offX}, s),
			ToPixelShifted(Point{X: x, Y: 1}, Point{X: offX}, s),
			clr)
	}
}
