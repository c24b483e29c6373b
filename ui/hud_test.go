package ui

import (
	"strings"
	"testing"

	"slope-field/canvas"
)

func TestStatusText(t *testing.T) {
	s := Status{
		View:    canvas.View{X: 0.5, Y: -0.25, Zoom: 2},
		Spacing: 0.125,
		Cursor:  canvas.Point{X: 1, Y: -1},
		Stats:   canvas.Stats{Segments: 476, Skipped: 2, Squares: 400},
	}
	got := StatusText(s)
	for _, want := range []string{
		"View: (0.5000, -0.2500) Zoom: 2.000",
		"Grid: 0.2500",
		"Cursor: (1.000, -1.000)",
		"Lines: 476 (skipped 2) Squares: 400",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("status text missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "\n"); n != 3 {
		t.Errorf("status has %d line breaks, want 3", n)
	}
}

func TestHUDError(t *testing.T) {
	h := NewHUD()
	if h.err != "" {
		t.Fatalf("new HUD shows error %q", h.err)
	}
	h.SetError("boom")
	if h.err != "boom" {
		t.Errorf("err = %q", h.err)
	}
}
