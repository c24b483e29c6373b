package canvas

import (
	"image/color"
	"math"
)

// DrawArrow draws a segment of the given length from pos in direction
// angle, with a small filled square as its head.
func DrawArrow(d *Drawer, v View, pos Point, angle, length, head float64, clr color.Color) {
	end := Point{
		X: pos.X + length*math.Cos(angle),
		Y: pos.Y + length*math.Sin(angle),
	}
	d.DrawSegmentMath(pos, end, v, clr)
	d.DrawSquare(end, head, v, clr)
}
