package window

import "github.com/richerfu/winit/dpi"

// ID identifies a window. The platform has exactly one window for the
// process lifetime, always PrimaryID.
type ID uint64

// PrimaryID is the fixed id of the single logical window.
const PrimaryID ID = 0

// Theme is a dark/light UI preference. The platform does not report one, so
// queries return ThemeUnknown.
type Theme int

const (
	ThemeUnknown Theme = iota
	ThemeLight
	ThemeDark
)

// Level is the z-order class of a window.
type Level int

const (
	LevelNormal Level = iota
	LevelAlwaysOnBottom
	LevelAlwaysOnTop
)

// Fullscreen describes a fullscreen request. The platform cannot change
// fullscreen state; requests are logged and dropped.
type Fullscreen struct {
	Borderless bool
}

// ImePurpose hints the IME at the kind of text being entered.
type ImePurpose int

const (
	ImePurposeNormal ImePurpose = iota
	ImePurposePassword
	ImePurposeTerminal
)

// ResizeDirection names the window edge or corner a drag-resize starts from.
type ResizeDirection int

const (
	ResizeEast ResizeDirection = iota
	ResizeNorth
	ResizeNorthEast
	ResizeNorthWest
	ResizeSouth
	ResizeSouthEast
	ResizeSouthWest
	ResizeWest
)

// CursorGrabMode constrains the cursor to the window.
type CursorGrabMode int

const (
	CursorGrabNone CursorGrabMode = iota
	CursorGrabConfined
	CursorGrabLocked
)

// Cursor names a standard cursor icon. The platform has no visible cursor;
// setters accept any value and do nothing.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorWait
	CursorNotAllowed
)

// CustomCursorSource is the input to CreateCustomCursor. The platform cannot
// build custom cursors, so any source is rejected with ErrNotSupported.
type CustomCursorSource struct {
	RGBA          []byte
	Width, Height uint32
	HotspotX      uint32
	HotspotY      uint32
}

// Icon is a window icon. The platform has no window icons; the type exists
// so attribute structs stay portable.
type Icon struct {
	RGBA          []byte
	Width, Height uint32
}

// UserAttentionType classifies a request_user_attention call.
type UserAttentionType int

const (
	AttentionInformational UserAttentionType = iota
	AttentionCritical
)

// Buttons is the set of enabled titlebar buttons.
type Buttons uint8

const (
	ButtonClose Buttons = 1 << iota
	ButtonMinimize
	ButtonMaximize

	AllButtons = ButtonClose | ButtonMinimize | ButtonMaximize
)

// DisplayHandle identifies the native display for graphics interop. The
// platform has a single display and the handle carries no per-display data;
// it is constructible at any time, independent of any window or surface.
type DisplayHandle struct{}

// Attributes are the requested properties for a new window.
//
// This platform accepts attributes but does not honor them: the OS owns the
// single surface and exposes no controls for size, decorations or
// visibility. Callers must not assume any attribute took effect.
type Attributes struct {
	Title          string
	SurfaceSize    *dpi.PhysicalSize
	MinSurfaceSize *dpi.PhysicalSize
	MaxSurfaceSize *dpi.PhysicalSize
	Visible        bool
	Transparent    bool
	Resizable      bool
	Decorations    bool
	Maximized      bool
	Fullscreen     *Fullscreen
	Level          Level
	Icon           *Icon
	Theme          Theme
	EnabledButtons Buttons
}

// DefaultAttributes returns the portable defaults for a new window.
func DefaultAttributes() Attributes {
	return Attributes{
		Title:          "winit window",
		Visible:        true,
		Resizable:      true,
		Decorations:    true,
		EnabledButtons: AllButtons,
	}
}
