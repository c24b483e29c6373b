package canvas

import (
	"image/color"

	"slope-field/engine"
)

// Lattice is the set of integer anchor points [Min, Max) x [Min, Max) at
// which a field is sampled, in raw mathematical units.
type Lattice struct {
	Min, Max    int
	ArrowLength float64
	HeadSize    float64 // half side of the arrowhead square
}

// Points returns the number of anchors in the lattice.
func (l Lattice) Points() int {
	n := l.Max - l.Min
	if n <= 0 {
		return 0
	}
	return n * n
}

// DrawField draws one arrow per lattice anchor, pointing along f.
// Anchors where f is not finite are left empty.
func DrawField(d *Drawer, v View, l Lattice, f engine.Field, clr color.Color) {
	for ix := l.Min; ix < l.Max; ix++ {
		for iy := l.Min; iy < l.Max; iy++ {
			x, y := float64(ix), float64(iy)
			angle := f.Angle(x, y)
			if !finite(angle) {
				continue
			}
			DrawArrow(d, v, Point{X: x, Y: y}, angle, l.ArrowLength, l.HeadSize, clr)
		}
	}
}
