// Package input turns window input into discrete events and applies them
// to the view state.
package input

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
	EventWheel
)

// Key is one of the keys the controller understands. Everything else
// arrives as KeyUnknown and is ignored.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	}
	return "Unknown"
}

// Event is a single input event. WheelY is only set for EventWheel.
type Event struct {
	Kind   EventKind
	Key    Key
	WheelY float64
}

func Quit() Event            { return Event{Kind: EventQuit} }
func KeyDown(k Key) Event    { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event      { return Event{Kind: EventKeyUp, Key: k} }
func Wheel(dy float64) Event { return Event{Kind: EventWheel, WheelY: dy} }
