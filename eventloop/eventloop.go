// Package eventloop drives the portable event loop on top of the host
// runtime's blocking dispatch primitive. One goroutine owns the loop: it
// blocks inside ability.App.RunLoop, and for every native event either maps
// it directly to an application callback (lifecycle, surface, focus) or runs
// it through the input normalizer (touch identity tracking, key
// translation). Application callbacks execute synchronously on that same
// goroutine; the EventLoopProxy is the only cross-goroutine surface.
package eventloop

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/dpi"
	"github.com/richerfu/winit/event"
	"github.com/richerfu/winit/internal/focus"
	"github.com/richerfu/winit/window"
)

// Config carries the dependencies for a new EventLoop.
type Config struct {
	// App is the host runtime handle. Required.
	App ability.App
	// Logger receives dispatch diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// EventLoop owns the native ability handle and runs the dispatch loop.
// Create one per process and consume it with RunApp.
type EventLoop struct {
	app    ability.App
	target *ActiveEventLoop
	logger *slog.Logger

	cause event.StartCause

	// Primary-pointer bookkeeping: set on every Down, compared on
	// Move/Up/Cancel. Only the most recent Down is primary.
	primaryPointer event.FingerID
	hasPrimary     bool
}

// New builds an event loop over the given ability app.
func New(cfg Config) (*EventLoop, error) {
	if cfg.App == nil {
		return nil, errors.New("an ability.App is required to create an EventLoop on OpenHarmony")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	proxy := &EventLoopProxy{waker: cfg.App.NewWaker()}

	return &EventLoop{
		app: cfg.App,
		target: &ActiveEventLoop{
			app:    cfg.App,
			logger: logger,
			focus:  focus.New(),
			proxy:  proxy,
		},
		logger: logger,
		cause:  event.StartCauseInit,
	}, nil
}

// Target returns the active-loop handle passed to callbacks.
func (el *EventLoop) Target() *ActiveEventLoop {
	return el.target
}

// RunApp runs the blocking dispatch loop, routing every native event to the
// handler. It returns when the handler requests an exit or when the host
// runtime terminates the loop on its own.
func (el *EventLoop) RunApp(handler ApplicationHandler) error {
	el.logger.Debug("mainloop iteration", "cause", el.cause.String())

	// A stale exit request from a previous run must not kill this one.
	el.target.clearExit()
	handler.NewEvents(el.target, el.cause)

	// An exit requested during NewEvents stops dispatch before any native
	// event is delivered.
	if el.target.Exiting() {
		el.logger.Debug("exit requested before native dispatch loop")
		return nil
	}

	el.app.RunLoop(func(native ability.Event) bool {
		el.dispatch(native, handler)
		if el.target.Exiting() {
			el.logger.Debug("exit requested, leaving native dispatch loop")
			return false
		}
		return true
	})

	return nil
}

// windowEvent delivers one portable event for the singleton window.
func (el *EventLoop) windowEvent(handler ApplicationHandler, ev event.WindowEvent) {
	handler.WindowEvent(el.target, window.PrimaryID, ev)
}

func (el *EventLoop) dispatch(native ability.Event, handler ApplicationHandler) {
	switch native := native.(type) {
	case ability.SurfaceCreate:
		handler.CanCreateSurfaces(el.target)

	case ability.SurfaceDestroy:
		handler.DestroySurfaces(el.target)

	case ability.WindowResize:
		var size dpi.PhysicalSize
		if nw := el.app.NativeWindow(); nw != nil {
			size = dpi.PhysicalSize{Width: nw.Width(), Height: nw.Height()}
		}
		el.windowEvent(handler, event.SurfaceResized{Size: size})

	case ability.WindowRedraw:
		el.windowEvent(handler, event.RedrawRequested{})

	case ability.ContentRectChange:
		el.logger.Warn("content rect change is not forwarded to the application yet")

	case ability.GainedFocus:
		el.target.focus.Set(true)
		el.windowEvent(handler, event.Focused{Gained: true})

	case ability.LostFocus:
		el.target.focus.Set(false)
		el.windowEvent(handler, event.Focused{Gained: false})

	case ability.ConfigChanged:
		nw := el.app.NativeWindow()
		if nw == nil {
			return
		}
		proposed := dpi.PhysicalSize{Width: nw.Width(), Height: nw.Height()}
		writer := event.NewSurfaceSizeWriter(proposed)
		el.windowEvent(handler, event.ScaleFactorChanged{
			ScaleFactor: float64(el.app.Scale()),
			SizeWriter:  writer,
		})
		// The OS owns the surface size; a requested override cannot be
		// applied, only reported.
		if req, ok := writer.Requested(); ok {
			el.logger.Debug("surface size override requested but not applied",
				"width", req.Width, "height", req.Height)
		}

	case ability.LowMemory:
		handler.MemoryWarning(el.target)

	case ability.Start:
		handler.Resumed(el.target)

	case ability.Resume:
		el.logger.Debug("app resumed - is running")

	case ability.Pause:
		el.logger.Debug("app paused - stopped running")

	case ability.SaveState:
		el.logger.Warn("saveState notification is not forwarded to the application yet")

	case ability.Stop:
		handler.Suspended(el.target)

	case ability.Destroy:
		el.logger.Warn("onDestroy notification is not forwarded to the application yet")

	case ability.UserWake:
		// The wake-up already produced this loop iteration; nothing else
		// to deliver.
		el.logger.Debug("user wake observed")

	case ability.Input:
		el.handleInput(native.Event, handler)

	default:
		el.logger.Debug("ignoring unknown native event", "event", fmt.Sprintf("%T", native))
	}
}
