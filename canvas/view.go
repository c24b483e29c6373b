package canvas

// View is the camera over the mathematical plane.
// (X, Y) lands on the centre of the surface and Zoom is the half-width,
// in mathematical units, of the visible square.
type View struct {
	X, Y float64
	Zoom float64
}

// Point is a position on the mathematical plane.
type Point struct {
	X, Y float64
}

// Pixel is a position on the surface, origin top-left.
type Pixel struct {
	X, Y int
}

// Surface is the size of the pixel target.
type Surface struct {
	Width, Height int
}

const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// ClampZoom keeps z inside [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Center returns the pixel that (v.X, v.Y) maps to. Its coordinates are
// also the scale, in pixels per normalized unit, of each axis.
func (s Surface) Center() Pixel {
	return Pixel{X: s.Width / 2, Y: s.Height / 2}
}

// ToPixel maps p into the surface under v. The square
// [v.X-v.Zoom, v.X+v.Zoom] x [v.Y-v.Zoom, v.Y+v.Zoom] covers the whole
// surface. Coordinates are truncated, not rounded, and are not clipped.
func ToPixel(p Point, v View, s Surface) Pixel {
	c := s.Center()
	px := ((p.X-v.X)/v.Zoom + 1.0) * float64(c.X)
	py := ((p.Y-v.Y)/v.Zoom + 1.0) * float64(c.Y)
	return Pixel{X: int(px), Y: int(py)}
}

// ToPixelShifted maps a point given in normalized units ([-1, 1] spans the
// surface) after subtracting off. The grid and axes use it to phase-align
// lines along one axis while the other spans the full surface.
func ToPixelShifted(p Point, off Point, s Surface) Pixel {
	c := s.Center()
	px := (p.X - off.X + 1.0) * float64(c.X)
	py := (p.Y - off.Y + 1.0) * float64(c.Y)
	return Pixel{X: int(px), Y: int(py)}
}

// ToPoint is the inverse of ToPixel, up to truncation.
func ToPoint(px Pixel, v View, s Surface) Point {
	c := s.Center()
	hw, hh := float64(c.X), float64(c.Y)
	return Point{
		X: (float64(px.X)/hw-1.0)*v.Zoom + v.X,
		Y: (float64(px.Y)/hh-1.0)*v.Zoom + v.Y,
	}
}
