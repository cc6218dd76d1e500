// Package ability defines the boundary to the host OS windowing runtime.
//
// The event loop never talks to OpenHarmony directly; it is handed an App,
// which owns the one-and-only native surface, delivers native events through
// a blocking dispatch loop, and answers queries about the current surface and
// configuration. Production builds wire the real ability runtime behind this
// interface; tests and tooling use the in-process simulator in ability/sim
// or the desktop X11 host in ability/xhost.
package ability

// App is the opaque handle to the host runtime's windowing ability.
//
// All methods except NewWaker (and the Waker it returns) are meant to be
// called from the goroutine that runs the dispatch loop.
type App interface {
	// RunLoop blocks, delivering native events to fn in arrival order.
	// Dispatch stops when fn returns false or when the host runtime
	// terminates the loop on its own.
	RunLoop(fn func(Event) bool)

	// NativeWindow returns the current native surface, or nil when no
	// surface exists (before SurfaceCreate and after SurfaceDestroy).
	NativeWindow() NativeWindow

	// Scale returns the display scale factor of the current configuration.
	Scale() float32

	// Config returns the current ability configuration.
	Config() Configuration

	// ContentRect returns the drawable content rect of the ability.
	ContentRect() Rect

	// NewWaker returns a waker bound to this app's dispatch loop. The
	// returned value is safe to share and call from any goroutine.
	NewWaker() Waker
}

// NativeWindow is the host-owned drawable surface backing the single window.
type NativeWindow interface {
	Width() uint32
	Height() uint32

	// Handle returns the raw native window handle for graphics interop.
	// It fails when the underlying handle is currently null.
	Handle() (uintptr, error)
}

// Waker unblocks a sleeping dispatch loop from another goroutine. Redundant
// wakes coalesce: N calls guarantee at least one loop iteration, not N.
// Calling a Waker before the loop starts or after it exits is harmless.
type Waker interface {
	Wake()
}

// ColorMode is the system-wide dark/light preference carried by the ability
// configuration.
type ColorMode int

const (
	ColorModeNotSet ColorMode = iota
	ColorModeDark
	ColorModeLight
)

// Configuration mirrors the ability-level configuration snapshot: language,
// color mode and screen density. Delivered alongside ConfigChanged events and
// queryable at any time.
type Configuration struct {
	Language  string
	ColorMode ColorMode
	Density   float32
}

// Rect is a native content rect, in physical pixels.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}
