package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"slope-field/canvas"
	"slope-field/input"
	"slope-field/ui"
)

type Game struct {
	state  *input.ViewState
	scene  *Scene
	hud    *ui.HUD
	poller input.Poller

	events []input.Event
	stats  canvas.Stats
	err    error
}

func NewGame(scene *Scene) *Game {
	return &Game{
		state: input.NewViewState(),
		scene: scene,
		hud:   ui.NewHUD(),
	}
}

// View returns a copy of the current camera.
func (g *Game) View() canvas.View { return g.state.View }

// Step applies one frame worth of events, then advances the view by the
// current velocity. It reports true once the loop should stop.
func (g *Game) Step(events []input.Event) bool {
	if g.state.ApplyAll(events) {
		return true
	}
	g.state.Tick()
	return false
}

// Render runs the full pass in order: grid, axes, field, curve.
// The first evaluation error it hits is kept and shown on the HUD;
// the next Update returns it.
func (g *Game) Render(r canvas.Rasterizer) canvas.Stats {
	d := canvas.NewDrawer(r, Surface)
	v := g.state.View
	canvas.DrawGrid(d, v, ColorGrid)
	canvas.DrawAxes(d, v, ColorAxes)
	canvas.DrawField(d, v, g.scene.Lattice, g.scene.Field, ColorField)
	canvas.DrawCurve(d, v, g.scene.Curve, g.scene.Func, ColorCurve)

	if err := g.scene.Err(); err != nil && g.err == nil {
		g.err = err
		g.hud.SetError(err.Error())
	}
	return d.Stats()
}

// Err returns the evaluation error that stops the game, if any.
func (g *Game) Err() error { return g.err }

func (g *Game) Update() error {
	g.events = g.poller.Poll(g.events[:0])
	return g.advance(g.events)
}

// advance is Update after polling.
func (g *Game) advance(events []input.Event) error {
	if g.err != nil {
		return g.err
	}
	if g.Step(events) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.stats = g.Render(canvas.Screen{Image: screen})

	v := g.state.View
	mx, my := ebiten.CursorPosition()
	g.hud.Draw(screen, ui.Status{
		View:    v,
		Spacing: canvas.GridSpacing(v.Zoom),
		Cursor:  canvas.ToPoint(canvas.Pixel{X: mx, Y: my}, v, Surface),
		Stats:   g.stats,
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return SurfaceWidth, SurfaceHeight
}
