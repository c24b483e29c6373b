package main

import (
	"image/color"
	"math"

	"slope-field/canvas"
	"slope-field/engine"
)

const (
	// --- Window ---
	WindowTitle   = "Slope Field"
	SurfaceWidth  = 800
	SurfaceHeight = 800
	TicksPerSec   = 60

	// --- Field ---
	DefaultLatticeMin  = -10
	DefaultLatticeMax  = 10
	DefaultArrowLength = 0.3
	DefaultHeadSize    = 0.01

	// --- Curve ---
	DefaultCurveStart = -5.0
	DefaultCurveEnd   = 5.0
	DefaultCurveSteps = 40
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorGrid       = color.RGBA{0x20, 0x20, 0x20, 0xff}
	ColorAxes       = color.RGBA{0x40, 0x40, 0x40, 0xff}
	ColorField      = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorCurve      = color.RGBA{0x00, 0xff, 0x00, 0xff}

	Surface = canvas.Surface{Width: SurfaceWidth, Height: SurfaceHeight}

	// DefaultField is used when the scene gives no field expression.
	DefaultField engine.Field = engine.SlopeField(func(x, _ float64) float64 {
		return math.Cos(x / math.Pi)
	})

	// DefaultCurve is used when the scene gives no curve expression.
	DefaultCurve engine.Func = engine.FuncOf(func(x float64) float64 {
		return math.Pi * math.Sin(x/math.Pi)
	})
)
