package main

import (
	"math"
	"strings"
	"testing"

	"slope-field/canvas"
	"slope-field/engine"
)

func TestLoadEmbeddedScene(t *testing.T) {
	s, err := LoadScene(sceneYAML)
	if err != nil {
		t.Fatalf("embedded scene: %v", err)
	}
	if _, ok := s.Field.(*engine.FieldExpr); !ok {
		t.Errorf("field is %T, want *engine.FieldExpr", s.Field)
	}
	if _, ok := s.Func.(*engine.FuncExpr); !ok {
		t.Errorf("curve is %T, want *engine.FuncExpr", s.Func)
	}
	wantLattice := canvas.Lattice{Min: -10, Max: 10, ArrowLength: 0.3, HeadSize: 0.01}
	if s.Lattice != wantLattice {
		t.Errorf("lattice = %+v, want %+v", s.Lattice, wantLattice)
	}
	if s.Curve != (canvas.Curve{Start: -5, End: 5, Steps: 40}) {
		t.Errorf("curve = %+v", s.Curve)
	}

	// The embedded expressions match the built-in closures.
	for _, x := range []float64{-9, -2.5, 0, 1, 7} {
		if got, want := s.Field.Angle(x, 0), DefaultField.Angle(x, 0); math.Abs(got-want) > 1e-12 {
			t.Errorf("field at %g: %g, want %g", x, got, want)
		}
		if got, want := s.Func.Eval(x), DefaultCurve.Eval(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("curve at %g: %g, want %g", x, got, want)
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestLoadSceneDefaults(t *testing.T) {
	s, err := LoadScene(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Field.(engine.FieldOf); !ok {
		t.Errorf("field is %T, want the built-in closure", s.Field)
	}
	if _, ok := s.Func.(engine.FuncOf); !ok {
		t.Errorf("curve is %T, want the built-in closure", s.Func)
	}
	if s.Lattice.Points() != 400 || s.Curve.Steps != DefaultCurveSteps {
		t.Errorf("defaults not applied: %+v %+v", s.Lattice, s.Curve)
	}
}

func TestLoadScenePartial(t *testing.T) {
	s, err := LoadScene([]byte("curve:\n  expr: x * x\n  steps: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Curve.Steps != 10 || s.Curve.Start != DefaultCurveStart {
		t.Errorf("curve = %+v", s.Curve)
	}
	if got := s.Func.Eval(3); got != 9 {
		t.Errorf("x * x at 3 = %g", got)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "field: [", "scene:"},
		{"unknown key", "field:\n  colour: red\n", "colour"},
		{"empty lattice", "field:\n  min: 3\n  max: 3\n", "empty lattice"},
		{"negative arrow", "field:\n  arrow_length: -1\n", "arrow size"},
		{"inverted interval", "curve:\n  start: 2\n  end: 1\n", "interval"},
		{"no steps", "curve:\n  steps: 0\n", "steps"},
		{"bad field expr", "field:\n  expr: 'x +'\n", "scene:"},
		{"bad curve expr", "curve:\n  expr: undefined_name(x)\n", "undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene([]byte(tt.yaml))
			if err == nil {
				t.Fatal("LoadScene succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
