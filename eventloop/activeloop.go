package eventloop

import (
	"fmt"
	"log/slog"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/internal/focus"
	"github.com/richerfu/winit/window"
)

// DeviceEvents is the application's preference for raw device event
// delivery. The OS delivers no raw device events, so the preference is
// accepted and ignored.
type DeviceEvents int

const (
	DeviceEventsWhenFocused DeviceEvents = iota
	DeviceEventsAlways
	DeviceEventsNever
)

// ActiveEventLoop is the per-iteration context handed to application
// callbacks. Control-flow and exit state live here as plain fields: they are
// written by callbacks and read by the driver, all on the single dispatch
// goroutine, so no synchronization is needed. The focus flag is the one
// concurrency-safe cell, shared with the window facade.
type ActiveEventLoop struct {
	app    ability.App
	logger *slog.Logger
	focus  *focus.Flag
	proxy  *EventLoopProxy

	controlFlow ControlFlow
	exit        bool
}

// CreateProxy returns a new proxy sharing this loop's waker.
func (l *ActiveEventLoop) CreateProxy() *EventLoopProxy {
	return l.proxy.Clone()
}

// CreateWindow returns the singleton window. It always succeeds; the
// attributes are accepted but not honored (see window.Attributes).
func (l *ActiveEventLoop) CreateWindow(attrs window.Attributes) (*window.Window, error) {
	return window.New(l.app, l.focus, l.logger, attrs)
}

// CreateCustomCursor always fails: the OS has no cursor support.
func (l *ActiveEventLoop) CreateCustomCursor(_ window.CustomCursorSource) error {
	return fmt.Errorf("create_custom_cursor: %w", window.ErrNotSupported)
}

// AvailableMonitors returns the empty monitor set.
func (l *ActiveEventLoop) AvailableMonitors() []Monitor { return nil }

// PrimaryMonitor reports no primary monitor.
func (l *ActiveEventLoop) PrimaryMonitor() *Monitor { return nil }

// SystemTheme is unknown on this platform.
func (l *ActiveEventLoop) SystemTheme() window.Theme { return window.ThemeUnknown }

// ListenDeviceEvents accepts and ignores the preference.
func (l *ActiveEventLoop) ListenDeviceEvents(DeviceEvents) {}

// SetControlFlow records the control-flow preference. Any value is accepted;
// the last write wins.
func (l *ActiveEventLoop) SetControlFlow(mode ControlFlow) {
	l.controlFlow = mode
}

// ControlFlow returns the current control-flow preference.
func (l *ActiveEventLoop) ControlFlow() ControlFlow {
	return l.controlFlow
}

// Exit requests that the loop stop dispatching. The driver observes the
// flag after each callback returns and breaks the native loop.
func (l *ActiveEventLoop) Exit() {
	l.exit = true
}

// Exiting reports whether an exit has been requested.
func (l *ActiveEventLoop) Exiting() bool {
	return l.exit
}

func (l *ActiveEventLoop) clearExit() {
	l.exit = false
}

// OwnedDisplayHandle returns a handle for native-display interop,
// independent of any window instance.
func (l *ActiveEventLoop) OwnedDisplayHandle() window.DisplayHandle {
	return window.DisplayHandle{}
}
