// Package event defines the portable, OS-independent event vocabulary that
// application callbacks consume. Values are immutable once emitted; the event
// loop produces exactly one portable value per native trigger (or a fixed
// ordered group for touch actions).
package event

import (
	"sync"

	"github.com/richerfu/winit/dpi"
)

// DeviceID identifies the native input device an event originated from.
type DeviceID int64

// FingerID identifies one touch contact. It is derived from the native
// per-contact id and is unique only within an active touch sequence; it is
// not globally stable.
type FingerID uint64

// StartCause tells new_events why the loop woke.
type StartCause int

const (
	StartCauseInit StartCause = iota
	StartCausePoll
	StartCauseWaitCancelled
	StartCauseResumeTimeReached
)

func (c StartCause) String() string {
	switch c {
	case StartCauseInit:
		return "init"
	case StartCausePoll:
		return "poll"
	case StartCauseWaitCancelled:
		return "wait-cancelled"
	case StartCauseResumeTimeReached:
		return "resume-time-reached"
	default:
		return "unknown"
	}
}

// ElementState is the pressed/released state of a button or key.
type ElementState int

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Force is a normalized contact pressure in [0, 1].
type Force float64

// PointerKind discriminates the tool behind a pointer event. Tool-type
// reporting is not plumbed through from the native side yet, so every
// pointer is currently PointerUnknown. The enum exists so finger/stylus/
// mouse discrimination can be added without changing the event shapes.
type PointerKind int

const (
	PointerUnknown PointerKind = iota
	PointerTouch
	PointerMouse
)

// WindowEvent is a portable event targeted at the single logical window.
type WindowEvent interface {
	isWindowEvent()
}

// PointerEntered reports a new pointer contact.
type PointerEntered struct {
	DeviceID DeviceID
	Position dpi.PhysicalPosition
	Primary  bool
	Kind     PointerKind
}

// PointerMoved reports pointer motion.
type PointerMoved struct {
	DeviceID DeviceID
	Position dpi.PhysicalPosition
	Primary  bool
	Kind     PointerKind
}

// PointerButton reports a press or release of a pointer contact.
type PointerButton struct {
	DeviceID DeviceID
	State    ElementState
	Position dpi.PhysicalPosition
	Primary  bool
	Kind     PointerKind
	Force    Force
}

// PointerLeft reports that a pointer contact ended. Position is nil when the
// native source did not report a final location.
type PointerLeft struct {
	DeviceID DeviceID
	Position *dpi.PhysicalPosition
	Primary  bool
	Kind     PointerKind
}

// KeyboardInput reports one key transition.
type KeyboardInput struct {
	DeviceID  DeviceID
	Event     KeyEvent
	Synthetic bool
}

// SurfaceResized reports the new surface size in physical pixels.
type SurfaceResized struct {
	Size dpi.PhysicalSize
}

// RedrawRequested asks the application to repaint.
type RedrawRequested struct{}

// Focused reports a window focus transition.
type Focused struct {
	Gained bool
}

// ScaleFactorChanged reports a new display scale factor. The application may
// use SizeWriter to request an override surface size; whether the request is
// honored is up to the platform.
type ScaleFactorChanged struct {
	ScaleFactor float64
	SizeWriter  *SurfaceSizeWriter
}

func (PointerEntered) isWindowEvent()     {}
func (PointerMoved) isWindowEvent()       {}
func (PointerButton) isWindowEvent()      {}
func (PointerLeft) isWindowEvent()        {}
func (KeyboardInput) isWindowEvent()      {}
func (SurfaceResized) isWindowEvent()     {}
func (RedrawRequested) isWindowEvent()    {}
func (Focused) isWindowEvent()            {}
func (ScaleFactorChanged) isWindowEvent() {}

// SurfaceSizeWriter is the write-back channel carried by ScaleFactorChanged.
// It is safe for concurrent use, though callbacks normally invoke it inline.
type SurfaceSizeWriter struct {
	mu        sync.Mutex
	size      dpi.PhysicalSize
	requested bool
}

// NewSurfaceSizeWriter returns a writer seeded with the platform-proposed
// surface size.
func NewSurfaceSizeWriter(proposed dpi.PhysicalSize) *SurfaceSizeWriter {
	return &SurfaceSizeWriter{size: proposed}
}

// Request records an override surface size.
func (w *SurfaceSizeWriter) Request(size dpi.PhysicalSize) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
	w.requested = true
}

// Requested reports the override size, if one was requested.
func (w *SurfaceSizeWriter) Requested() (dpi.PhysicalSize, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size, w.requested
}
