package canvas

import "image/color"

// DrawAxes draws both coordinate axes through the mathematical origin.
// Each axis spans the full surface along its own direction.
func DrawAxes(d *Drawer, v View, clr color.Color) {
	s := d.Surface()

	offX := Point{X: v.X / v.Zoom}
	d.DrawSegment(
		ToPixelShifted(Point{X: 0, Y: -1}, offX, s),
		ToPixelShifted(Point{X: 0, Y: 1}, offX, s),
		clr)

	offY := Point{Y: v.Y / v.Zoom}
	d.DrawSegment(
		ToPixelShifted(Point{X: -1, Y: 0}, offY, s),
		ToPixelShifted(Point{X: 1, Y: 0}, offY, s),
		clr)
}
