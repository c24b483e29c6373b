package canvas

import (
	"image/color"
	"math"

	"slope-field/engine"
)

// Curve is a function sampled at Steps+1 evenly spaced points of
// [Start, End].
type Curve struct {
	Start, End float64
	Steps      int
}

// DrawCurve connects consecutive samples of f with straight segments.
// A non-finite sample breaks the polyline.
func DrawCurve(d *Drawer, v View, c Curve, f engine.Func, clr color.Color) {
	if c.Steps < 1 {
		return
	}
	step := (c.End - c.Start) / float64(c.Steps)
	last := Point{X: c.Start, Y: f.Eval(c.Start)}
	for i := 1; i <= c.Steps; i++ {
		x := c.Start + step*float64(i)
		cur := Point{X: x, Y: f.Eval(x)}
		if finite(last.Y) && finite(cur.Y) {
			d.DrawSegmentMath(last, cur, v, clr)
		}
		last = cur
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
