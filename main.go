package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scene, err := LoadScene(sceneYAML)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("field %q: %d arrows on [%d, %d)^2, curve %q on [%g, %g] in %d steps",
		scene.FieldName, scene.Lattice.Points(), scene.Lattice.Min, scene.Lattice.Max,
		scene.CurveName, scene.Curve.Start, scene.Curve.End, scene.Curve.Steps)

	ebiten.SetWindowSize(SurfaceWidth, SurfaceHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(TicksPerSec)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
