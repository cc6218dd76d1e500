// Package sim is an in-process ability.App for tests, replay tooling and
// examples. It delivers a scripted or programmatically enqueued native event
// stream through the same blocking RunLoop contract the real runtime uses,
// models surface existence so geometry queries behave, and implements a
// coalescing waker.
package sim

import (
	"sync"
	"sync/atomic"

	"github.com/richerfu/winit/ability"
)

// App is a simulated ability runtime. The enqueue methods are safe to call
// from any goroutine, before or during RunLoop.
type App struct {
	mu          sync.Mutex
	queue       []ability.Event
	wakePending bool
	finished    bool

	win   *nativeWindow
	scale float32
	cfg   ability.Configuration
	rect  ability.Rect

	notify chan struct{}
}

// New returns a simulator with no surface and a scale factor of 1.
func New() *App {
	return &App{
		scale:  1,
		notify: make(chan struct{}, 1),
	}
}

// RunLoop dispatches queued events to fn in order, blocking while the queue
// is empty. It returns when fn returns false, or when Finish has been called
// and the queue has drained. Pending wakes with no queued event are
// delivered as a single ability.UserWake.
func (a *App) RunLoop(fn func(ability.Event) bool) {
	for {
		a.mu.Lock()
		var ev ability.Event
		switch {
		case len(a.queue) > 0:
			ev = a.queue[0]
			a.queue = a.queue[1:]
		case a.wakePending:
			a.wakePending = false
			ev = ability.UserWake{}
		}
		finished := a.finished
		a.mu.Unlock()

		if ev == nil {
			if finished {
				return
			}
			<-a.notify
			continue
		}
		if !fn(ev) {
			return
		}
	}
}

// NativeWindow returns the simulated surface, or nil when none exists.
func (a *App) NativeWindow() ability.NativeWindow {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.win == nil {
		return nil
	}
	return a.win
}

// Scale returns the simulated display scale factor.
func (a *App) Scale() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scale
}

// Config returns the simulated ability configuration.
func (a *App) Config() ability.Configuration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// ContentRect returns the simulated content rect.
func (a *App) ContentRect() ability.Rect {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rect
}

// NewWaker returns a waker for this app. Wakes coalesce: any number of
// calls before the loop observes them produce a single UserWake iteration.
func (a *App) NewWaker() ability.Waker {
	return waker{app: a}
}

type waker struct {
	app *App
}

func (w waker) Wake() {
	w.app.mu.Lock()
	w.app.wakePending = true
	w.app.mu.Unlock()
	w.app.signal()
}

// signal pokes RunLoop without blocking; a full channel already means a
// pending observation.
func (a *App) signal() {
	select {
	case a.notify <- struct{}{}:
	default:
	}
}

// Push enqueues an arbitrary native event.
func (a *App) Push(ev ability.Event) {
	a.mu.Lock()
	a.queue = append(a.queue, ev)
	a.mu.Unlock()
	a.signal()
}

// Finish marks the event stream complete; RunLoop returns once the queue
// drains.
func (a *App) Finish() {
	a.mu.Lock()
	a.finished = true
	a.mu.Unlock()
	a.signal()
}

// CreateSurface brings the simulated surface into existence and enqueues
// SurfaceCreate.
func (a *App) CreateSurface(width, height uint32) {
	a.mu.Lock()
	a.win = newNativeWindow(width, height)
	a.queue = append(a.queue, ability.SurfaceCreate{})
	a.mu.Unlock()
	a.signal()
}

// DestroySurface enqueues SurfaceDestroy and drops the surface.
func (a *App) DestroySurface() {
	a.mu.Lock()
	a.queue = append(a.queue, ability.SurfaceDestroy{})
	a.win = nil
	a.mu.Unlock()
	a.signal()
}

// Resize updates the surface size and enqueues WindowResize. Resizing with
// no surface still enqueues the event, mimicking a host that reports a
// resize for an already-torn-down surface.
func (a *App) Resize(width, height uint32) {
	a.mu.Lock()
	if a.win != nil {
		a.win.width.Store(width)
		a.win.height.Store(height)
	}
	a.queue = append(a.queue, ability.WindowResize{})
	a.mu.Unlock()
	a.signal()
}

// Redraw enqueues WindowRedraw.
func (a *App) Redraw() {
	a.Push(ability.WindowRedraw{})
}

// SetFocus enqueues the matching focus transition.
func (a *App) SetFocus(focused bool) {
	if focused {
		a.Push(ability.GainedFocus{})
	} else {
		a.Push(ability.LostFocus{})
	}
}

// ChangeConfig updates configuration and scale, then enqueues ConfigChanged.
func (a *App) ChangeConfig(cfg ability.Configuration, scale float32) {
	a.mu.Lock()
	a.cfg = cfg
	a.scale = scale
	a.queue = append(a.queue, ability.ConfigChanged{})
	a.mu.Unlock()
	a.signal()
}

// Touch enqueues one native touch event.
func (a *App) Touch(device int64, action ability.TouchAction, points ...ability.TouchPoint) {
	a.Push(ability.Input{Event: ability.TouchEvent{
		DeviceID: device,
		Action:   action,
		Points:   points,
	}})
}

// Key enqueues one native key event.
func (a *App) Key(device int64, code ability.KeyCode, action ability.KeyAction) {
	a.Push(ability.Input{Event: ability.KeyEvent{
		DeviceID: device,
		Code:     code,
		Action:   action,
	}})
}

// nativeWindow sizes are atomic so a resize enqueued from another goroutine
// never races the loop goroutine's geometry reads.
type nativeWindow struct {
	width  atomic.Uint32
	height atomic.Uint32
}

func newNativeWindow(width, height uint32) *nativeWindow {
	w := &nativeWindow{}
	w.width.Store(width)
	w.height.Store(height)
	return w
}

func (w *nativeWindow) Width() uint32  { return w.width.Load() }
func (w *nativeWindow) Height() uint32 { return w.height.Load() }

// Handle returns a placeholder non-null handle; the simulator has no real
// surface memory.
func (w *nativeWindow) Handle() (uintptr, error) { return 1, nil }
