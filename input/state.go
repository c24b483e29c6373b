package input

import "slope-field/canvas"

const (
	// MoveStep is the pan applied per frame while a direction key is held.
	MoveStep = 0.0001
	// ZoomFactor is applied once per wheel event.
	ZoomFactor = 1.2
)

// ViewState is everything the frame loop mutates: the camera, the current
// pan velocity and whether the loop should stop. Renderers get a copy of
// View and never see the rest.
type ViewState struct {
	View     canvas.View
	Movement canvas.Point
	Quit     bool
}

func NewViewState() *ViewState {
	return &ViewState{View: canvas.View{X: 0, Y: 0, Zoom: 1.0}}
}

// Apply feeds one event into the state machine.
//
// Direction keys overwrite the velocity of their axis, so holding two
// opposite keys leaves whichever event came last in effect. Releasing
// either one stops the axis.
func (s *ViewState) Apply(ev Event) {
	if s.Quit {
		return
	}
	switch ev.Kind {
	case EventQuit:
		s.Quit = true
	case EventKeyDown:
		switch ev.Key {
		case KeyW:
			s.Movement.Y = MoveStep
		case KeyS:
			s.Movement.Y = -MoveStep
		case KeyA:
			s.Movement.X = MoveStep
		case KeyD:
			s.Movement.X = -MoveStep
		case KeyEscape:
			s.Quit = true
		}
	case EventKeyUp:
		switch ev.Key {
		case KeyW, KeyS:
			s.Movement.Y = 0
		case KeyA, KeyD:
			s.Movement.X = 0
		}
	case EventWheel:
		switch {
		case ev.WheelY > 0:
			s.View.Zoom = canvas.ClampZoom(s.View.Zoom * ZoomFactor)
		case ev.WheelY < 0:
			s.View.Zoom = canvas.ClampZoom(s.View.Zoom / ZoomFactor)
		}
	}
}

// ApplyAll feeds events in order and reports whether the loop should stop.
func (s *ViewState) ApplyAll(events []Event) bool {
	for _, ev := range events {
		s.Apply(ev)
	}
	return s.Quit
}

// Tick advances the view by the current velocity. It runs once per frame
// after all pending events were applied.
func (s *ViewState) Tick() {
	s.View.X += s.Movement.X
	s.View.Y += s.Movement.Y
}
