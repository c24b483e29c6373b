// Package engine evaluates the functions that the renderers sample.
//
// Renderers only see the Func and Field interfaces. A value can be a Go
// closure (FuncOf, FieldOf) or a Starlark expression (CompileFunc,
// CompileField).
package engine

import "math"

// Func is a function of one variable, plotted as a curve.
type Func interface {
	Eval(x float64) float64
}

// Field assigns an angle, in radians, to every point of the plane.
type Field interface {
	Angle(x, y float64) float64
}

// FuncOf adapts an ordinary Go function to Func.
type FuncOf func(x float64) float64

func (f FuncOf) Eval(x float64) float64 { return f(x) }

// FieldOf adapts an ordinary Go function to Field.
type FieldOf func(x, y float64) float64

func (f FieldOf) Angle(x, y float64) float64 { return f(x, y) }

// SlopeField turns a slope dy/dx into a Field of direction angles.
func SlopeField(slope func(x, y float64) float64) Field {
	return FieldOf(func(x, y float64) float64 {
		return math.Atan(slope(x, y))
	})
}
