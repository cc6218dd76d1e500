// Package window is the facade over the platform's one-and-only native
// surface. Most mutators are deliberate no-ops: the OS owns the surface and
// offers no controls for titles, decorations, position or size. Geometry
// queries forward to the current native surface and fall back to a fixed
// placeholder size while none exists.
package window

import (
	"log/slog"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/dpi"
	"github.com/richerfu/winit/internal/focus"
)

// Fallback surface size reported before the first native surface appears.
const (
	FallbackWidth  uint32 = 1080
	FallbackHeight uint32 = 2720
)

// Window is the single logical window. Create it through
// ActiveEventLoop.CreateWindow; it lives for the rest of the process.
type Window struct {
	app    ability.App
	focus  *focus.Flag
	logger *slog.Logger
}

// New builds the window facade. Attributes are accepted but not applied;
// see Attributes.
func New(app ability.App, f *focus.Flag, logger *slog.Logger, _ Attributes) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return &Window{app: app, focus: f, logger: logger}, nil
}

// ID returns the fixed window id.
func (w *Window) ID() ID { return PrimaryID }

// RequestRedraw is a no-op; the host runtime schedules redraws itself and
// delivers them as WindowRedraw events.
func (w *Window) RequestRedraw() {}

// ScaleFactor returns the scale factor used for event coordinates. Scale
// changes are reported through ScaleFactorChanged; the base factor is 1.
func (w *Window) ScaleFactor() float64 { return 1.0 }

// SurfacePosition returns the surface origin relative to the window, always
// zero on this platform.
func (w *Window) SurfacePosition() dpi.PhysicalPosition {
	return dpi.PhysicalPosition{}
}

// SafeArea returns the insets of the area obscured by system UI.
func (w *Window) SafeArea() dpi.PhysicalInsets {
	return dpi.PhysicalInsets{}
}

// SurfaceSize returns the current surface size, or the fallback placeholder
// while no native surface exists.
func (w *Window) SurfaceSize() dpi.PhysicalSize {
	if nw := w.app.NativeWindow(); nw != nil {
		return dpi.PhysicalSize{Width: nw.Width(), Height: nw.Height()}
	}
	return dpi.PhysicalSize{Width: FallbackWidth, Height: FallbackHeight}
}

// RequestSurfaceSize asks for a new surface size. The request cannot be
// honored; the returned size is always nil.
func (w *Window) RequestSurfaceSize(_ dpi.PhysicalSize) *dpi.PhysicalSize {
	return nil
}

// OuterSize equals SurfaceSize: there are no decorations.
func (w *Window) OuterSize() dpi.PhysicalSize { return w.SurfaceSize() }

// OuterPosition is not a concept on this OS.
func (w *Window) OuterPosition() (dpi.PhysicalPosition, error) {
	return dpi.PhysicalPosition{}, notSupported("outer_position")
}

// SetOuterPosition has no effect.
func (w *Window) SetOuterPosition(dpi.PhysicalPosition) {}

// Config returns the current ability configuration.
func (w *Window) Config() ability.Configuration { return w.app.Config() }

// ContentRect returns the current native content rect.
func (w *Window) ContentRect() ability.Rect { return w.app.ContentRect() }

// Size limits, resize increments: accepted, never applied.

func (w *Window) SetMinSurfaceSize(*dpi.PhysicalSize)          {}
func (w *Window) SetMaxSurfaceSize(*dpi.PhysicalSize)          {}
func (w *Window) SurfaceResizeIncrements() *dpi.PhysicalSize   { return nil }
func (w *Window) SetSurfaceResizeIncrements(*dpi.PhysicalSize) {}

// Title/appearance mutators: the OS draws no decorations, all no-ops.

func (w *Window) SetTitle(string)           {}
func (w *Window) Title() string             { return "" }
func (w *Window) SetTransparent(bool)       {}
func (w *Window) SetBlur(bool)              {}
func (w *Window) SetVisible(bool)           {}
func (w *Window) IsVisible() (bool, bool)   { return false, false }
func (w *Window) SetResizable(bool)         {}
func (w *Window) IsResizable() bool         { return false }
func (w *Window) SetEnabledButtons(Buttons) {}
func (w *Window) EnabledButtons() Buttons   { return AllButtons }
func (w *Window) SetMinimized(bool)         {}
func (w *Window) IsMinimized() (bool, bool) { return false, false }
func (w *Window) SetMaximized(bool)         {}
func (w *Window) IsMaximized() bool         { return false }
func (w *Window) SetDecorations(bool)       {}
func (w *Window) IsDecorated() bool         { return true }
func (w *Window) SetLevel(Level)            {}
func (w *Window) SetIcon(*Icon)             {}

// SetFullscreen logs and drops the request; the OS decides fullscreen state.
func (w *Window) SetFullscreen(*Fullscreen) {
	w.logger.Warn("cannot set fullscreen on this platform")
}

// GetFullscreen reports no fullscreen state.
func (w *Window) GetFullscreen() *Fullscreen { return nil }

// IME controls: accepted, never applied.

func (w *Window) SetImeCursorArea(dpi.PhysicalPosition, dpi.PhysicalSize) {}
func (w *Window) SetImeAllowed(bool)                                      {}
func (w *Window) SetImePurpose(ImePurpose)                                {}

// Focus and attention.

func (w *Window) FocusWindow()                            {}
func (w *Window) RequestUserAttention(*UserAttentionType) {}

// HasFocus reports the most recent focus notification. Safe to call from
// any goroutine.
func (w *Window) HasFocus() bool { return w.focus.Focused() }

// Cursor controls. There is no visible cursor on this OS.

func (w *Window) SetCursor(Cursor)      {}
func (w *Window) SetCursorVisible(bool) {}

func (w *Window) SetCursorPosition(dpi.PhysicalPosition) error {
	return notSupported("set_cursor_position")
}

func (w *Window) SetCursorGrab(CursorGrabMode) error {
	return notSupported("set_cursor_grab")
}

func (w *Window) SetCursorHittest(bool) error {
	return notSupported("set_cursor_hittest")
}

// Window dragging has no analogue.

func (w *Window) DragWindow() error {
	return notSupported("drag_window")
}

func (w *Window) DragResizeWindow(ResizeDirection) error {
	return notSupported("drag_resize_window")
}

func (w *Window) ShowWindowMenu(dpi.PhysicalPosition) {}

// Theme and content protection.

func (w *Window) SetTheme(Theme)           {}
func (w *Window) GetTheme() Theme          { return ThemeUnknown }
func (w *Window) SetContentProtected(bool) {}

// ResetDeadKeys is a no-op; dead-key composition is not modeled.
func (w *Window) ResetDeadKeys() {}

// PrePresentNotify is a no-op hook called before presenting a frame.
func (w *Window) PrePresentNotify() {}

// Handle returns the raw native window handle. It is only valid between the
// resumed and suspended lifecycle notifications; outside that span the
// native surface is null and ErrUnavailable is returned.
func (w *Window) Handle() (uintptr, error) {
	nw := w.app.NativeWindow()
	if nw == nil {
		w.logger.Error("cannot get the native window: it is null before resumed and after suspended; " +
			"only request the handle between those events")
		return 0, unavailable("window_handle")
	}
	h, err := nw.Handle()
	if err != nil {
		w.logger.Error("cannot get the native window handle, it's null")
		return 0, unavailable("window_handle")
	}
	return h, nil
}

// DisplayHandle returns the native display handle. It never fails; the
// display exists independently of the surface.
func (w *Window) DisplayHandle() DisplayHandle { return DisplayHandle{} }
