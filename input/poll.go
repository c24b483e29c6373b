package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = []struct {
	code ebiten.Key
	key  Key
}{
	{ebiten.KeyW, KeyW},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyEscape, KeyEscape},
}

// Poller turns ebiten's per-tick input state into events.
type Poller struct {
	wheel float64 // scroll not yet reported as a whole notch
}

// Poll appends the events of the current tick to dst.
//
// ebiten exposes key state rather than a queue, so order within a tick is
// fixed: quit, releases, presses, then the wheel. The window close button
// is reported as quit once ebiten.SetWindowClosingHandled(true) is set.
func (p *Poller) Poll(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Quit())
	}
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k.code) {
			dst = append(dst, KeyUp(k.key))
		}
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.code) {
			dst = append(dst, KeyDown(k.key))
		}
	}
	_, dy := ebiten.Wheel()
	return p.scroll(dst, dy)
}

// scroll appends one Wheel event per whole notch of accumulated scroll.
// A mouse wheel reports whole notches; a trackpad reports fractions that
// add up over several ticks.
func (p *Poller) scroll(dst []Event, dy float64) []Event {
	if dy == 0 || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return dst
	}
	if (p.wheel < 0) != (dy < 0) {
		p.wheel = 0
	}
	p.wheel += dy
	n := math.Trunc(p.wheel)
	p.wheel -= n
	for ; n >= 1; n-- {
		dst = append(dst, Wheel(1))
	}
	for ; n <= -1; n++ {
		dst = append(dst, Wheel(-1))
	}
	return dst
}
