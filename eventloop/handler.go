package eventloop

import (
	"github.com/richerfu/winit/event"
	"github.com/richerfu/winit/window"
)

// ApplicationHandler is the application-facing callback interface. Every
// method is invoked synchronously on the dispatch goroutine, in event order;
// handlers are expected to return promptly and may mutate loop state (control
// flow, exit) through the ActiveEventLoop they receive.
type ApplicationHandler interface {
	// NewEvents is called when a batch of events is about to be
	// dispatched, with the cause of the wake-up.
	NewEvents(loop *ActiveEventLoop, cause event.StartCause)

	// WindowEvent delivers one portable event for the window with the
	// given id. On this platform the id is always window.PrimaryID.
	WindowEvent(loop *ActiveEventLoop, id window.ID, ev event.WindowEvent)

	// CanCreateSurfaces is called when the native surface exists and
	// GPU surfaces may be created.
	CanCreateSurfaces(loop *ActiveEventLoop)

	// DestroySurfaces is called when the native surface is about to go
	// away; all GPU surfaces must be dropped.
	DestroySurfaces(loop *ActiveEventLoop)

	// Resumed and Suspended bracket the span during which the native
	// window handle is valid.
	Resumed(loop *ActiveEventLoop)
	Suspended(loop *ActiveEventLoop)

	// MemoryWarning relays the host's memory pressure notification.
	MemoryWarning(loop *ActiveEventLoop)
}
