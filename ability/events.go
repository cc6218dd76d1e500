package ability

// Event is one native notification delivered by the host runtime's dispatch
// loop. The loop borrows the value for the duration of a single callback;
// implementations must not retain it.
type Event interface {
	isEvent()
}

// Surface lifecycle.

// SurfaceCreate reports that the native surface now exists.
type SurfaceCreate struct{}

// SurfaceDestroy reports that the native surface is gone.
type SurfaceDestroy struct{}

// WindowResize reports that the native surface changed size. The new size is
// not carried on the event; it is read from App.NativeWindow.
type WindowResize struct{}

// WindowRedraw asks for the surface contents to be redrawn.
type WindowRedraw struct{}

// ContentRectChange reports a change of the drawable content rect.
type ContentRectChange struct{}

// Focus and configuration.

// GainedFocus and LostFocus report window focus transitions.
type GainedFocus struct{}
type LostFocus struct{}

// ConfigChanged reports that the ability configuration (language, color
// mode, density/scale) changed.
type ConfigChanged struct{}

// LowMemory is the host's memory pressure warning.
type LowMemory struct{}

// Ability lifecycle.

type Start struct{}
type Resume struct{}
type Pause struct{}
type SaveState struct{}
type Stop struct{}
type Destroy struct{}

// Input wraps one native input event.
type Input struct {
	Event InputEvent
}

// UserWake is delivered when a Waker fires while no native event is pending.
// It carries no payload; the loop iteration itself is the signal.
type UserWake struct{}

func (SurfaceCreate) isEvent()     {}
func (SurfaceDestroy) isEvent()    {}
func (WindowResize) isEvent()      {}
func (WindowRedraw) isEvent()      {}
func (ContentRectChange) isEvent() {}
func (GainedFocus) isEvent()       {}
func (LostFocus) isEvent()         {}
func (ConfigChanged) isEvent()     {}
func (LowMemory) isEvent()         {}
func (Start) isEvent()             {}
func (Resume) isEvent()            {}
func (Pause) isEvent()             {}
func (SaveState) isEvent()         {}
func (Stop) isEvent()              {}
func (Destroy) isEvent()           {}
func (Input) isEvent()             {}
func (UserWake) isEvent()          {}

// InputEvent is either a TouchEvent or a KeyEvent.
type InputEvent interface {
	isInputEvent()
}

// TouchAction is the multimodal-input touch action kind. The host runtime
// only ever produces Down, Move, Up and Cancel.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchPoint is one finger contact within a touch event.
type TouchPoint struct {
	// ID identifies the contact within the active touch sequence. It is
	// not stable across sequences.
	ID int32
	X  float64
	Y  float64
	// Force is the normalized contact pressure in [0, 1].
	Force float64
}

// TouchEvent carries one touch action and the ordered contacts it applies to.
type TouchEvent struct {
	DeviceID int64
	Action   TouchAction
	Points   []TouchPoint
}

// KeyAction is the native key action kind.
type KeyAction int

const (
	KeyActionDown KeyAction = iota
	KeyActionUp
)

// KeyEvent carries one native key notification.
type KeyEvent struct {
	DeviceID int64
	Code     KeyCode
	Action   KeyAction
}

func (TouchEvent) isInputEvent() {}
func (KeyEvent) isInputEvent()   {}
