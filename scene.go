package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"slope-field/canvas"
	"slope-field/engine"
)

//go:embed scene.yaml
var sceneYAML []byte

type FieldState struct {
	Name        string  `yaml:"name"`
	Expr        string  `yaml:"expr"`
	Min         int     `yaml:"min"`
	Max         int     `yaml:"max"`
	ArrowLength float64 `yaml:"arrow_length"`
	HeadSize    float64 `yaml:"head_size"`
}

type CurveState struct {
	Name  string  `yaml:"name"`
	Expr  string  `yaml:"expr"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Steps int     `yaml:"steps"`
}

// SceneState is the YAML form of a scene. Omitted keys keep their defaults.
type SceneState struct {
	Field FieldState `yaml:"field"`
	Curve CurveState `yaml:"curve"`
}

// Scene is what gets drawn on top of the grid and axes.
type Scene struct {
	FieldName string
	Lattice   canvas.Lattice
	Field     engine.Field

	CurveName string
	Curve     canvas.Curve
	Func      engine.Func
}

func DefaultSceneState() SceneState {
	return SceneState{
		Field: FieldState{
			Name:        "field",
			Min:         DefaultLatticeMin,
			Max:         DefaultLatticeMax,
			ArrowLength: DefaultArrowLength,
			HeadSize:    DefaultHeadSize,
		},
		Curve: CurveState{
			Name:  "curve",
			Start: DefaultCurveStart,
			End:   DefaultCurveEnd,
			Steps: DefaultCurveSteps,
		},
	}
}

// LoadScene parses a YAML scene and compiles its expressions.
func LoadScene(data []byte) (*Scene, error) {
	state := DefaultSceneState()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return state.Build()
}

// Build validates the state and turns it into a Scene.
func (st SceneState) Build() (*Scene, error) {
	f, c := st.Field, st.Curve
	lattice := canvas.Lattice{
		Min:         f.Min,
		Max:         f.Max,
		ArrowLength: f.ArrowLength,
		HeadSize:    f.HeadSize,
	}
	if lattice.Points() == 0 {
		return nil, fmt.Errorf("scene: field %q: empty lattice [%d, %d)", f.Name, f.Min, f.Max)
	}
	if f.ArrowLength <= 0 || f.HeadSize < 0 {
		return nil, fmt.Errorf("scene: field %q: invalid arrow size %g/%g", f.Name, f.ArrowLength, f.HeadSize)
	}
	if c.End <= c.Start {
		return nil, fmt.Errorf("scene: curve %q: invalid interval [%g, %g]", c.Name, c.Start, c.End)
	}
	if c.Steps < 1 {
		return nil, fmt.Errorf("scene: curve %q: steps must be positive, got %d", c.Name, c.Steps)
	}

	s := &Scene{
		FieldName: f.Name,
		Lattice:   lattice,
		Field:     DefaultField,
		CurveName: c.Name,
		Curve:     canvas.Curve{Start: c.Start, End: c.End, Steps: c.Steps},
		Func:      DefaultCurve,
	}
	if f.Expr != "" {
		field, err := engine.CompileField(f.Name, f.Expr)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.Field = field
	}
	if c.Expr != "" {
		fn, err := engine.CompileFunc(c.Name, c.Expr)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.Func = fn
	}
	return s, nil
}

// Err reports the first evaluation error of the scene's functions.
func (s *Scene) Err() error {
	return engine.Check(s.Field, s.Func)
}
