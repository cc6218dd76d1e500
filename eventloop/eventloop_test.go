package eventloop

import (
	"fmt"
	"testing"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/ability/sim"
	"github.com/richerfu/winit/dpi"
	"github.com/richerfu/winit/event"
	"github.com/richerfu/winit/window"
)

// recordingHandler captures every callback in arrival order.
type recordingHandler struct {
	causes []event.StartCause
	events []event.WindowEvent
	calls  []string

	// onEvent, when set, runs after each window event is recorded.
	onEvent func(loop *ActiveEventLoop, ev event.WindowEvent)
	// onCall, when set, runs after each lifecycle callback is recorded.
	onCall func(loop *ActiveEventLoop, name string)
}

func (h *recordingHandler) NewEvents(loop *ActiveEventLoop, cause event.StartCause) {
	h.causes = append(h.causes, cause)
}

func (h *recordingHandler) WindowEvent(loop *ActiveEventLoop, id window.ID, ev event.WindowEvent) {
	if id != window.PrimaryID {
		panic(fmt.Sprintf("unexpected window id %d", id))
	}
	h.events = append(h.events, ev)
	if h.onEvent != nil {
		h.onEvent(loop, ev)
	}
}

func (h *recordingHandler) lifecycle(loop *ActiveEventLoop, name string) {
	h.calls = append(h.calls, name)
	if h.onCall != nil {
		h.onCall(loop, name)
	}
}

func (h *recordingHandler) CanCreateSurfaces(loop *ActiveEventLoop) { h.lifecycle(loop, "create") }
func (h *recordingHandler) DestroySurfaces(loop *ActiveEventLoop)   { h.lifecycle(loop, "destroy") }
func (h *recordingHandler) Resumed(loop *ActiveEventLoop)           { h.lifecycle(loop, "resumed") }
func (h *recordingHandler) Suspended(loop *ActiveEventLoop)         { h.lifecycle(loop, "suspended") }
func (h *recordingHandler) MemoryWarning(loop *ActiveEventLoop)     { h.lifecycle(loop, "memory") }

func newTestLoop(t *testing.T, app *sim.App) (*EventLoop, *recordingHandler) {
	t.Helper()
	loop, err := New(Config{App: app})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return loop, &recordingHandler{}
}

func run(t *testing.T, loop *EventLoop, h *recordingHandler) {
	t.Helper()
	if err := loop.RunApp(h); err != nil {
		t.Fatalf("RunApp() error = %v", err)
	}
}

func eventNames(events []event.WindowEvent) []string {
	names := make([]string, len(events))
	for i, ev := range events {
		switch ev := ev.(type) {
		case event.PointerEntered:
			names[i] = "entered"
		case event.PointerMoved:
			names[i] = "moved"
		case event.PointerButton:
			names[i] = "button-" + ev.State.String()
		case event.PointerLeft:
			names[i] = "left"
		case event.KeyboardInput:
			names[i] = "key-" + ev.Event.State.String()
		case event.SurfaceResized:
			names[i] = "resized"
		case event.RedrawRequested:
			names[i] = "redraw"
		case event.Focused:
			names[i] = fmt.Sprintf("focused-%t", ev.Gained)
		case event.ScaleFactorChanged:
			names[i] = "scale"
		default:
			names[i] = fmt.Sprintf("%T", ev)
		}
	}
	return names
}

func wantNames(t *testing.T, got []event.WindowEvent, want ...string) {
	t.Helper()
	names := eventNames(got)
	if len(names) != len(want) {
		t.Fatalf("got events %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("event %d = %s, want %s (full: %v)", i, names[i], want[i], names)
		}
	}
}

func TestNewRequiresApp(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New() with nil app should return error")
	}
}

func TestRunAppFiresInitCauseOnce(t *testing.T) {
	app := sim.New()
	app.Finish()
	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	if len(h.causes) != 1 || h.causes[0] != event.StartCauseInit {
		t.Fatalf("causes = %v, want [init]", h.causes)
	}
}

func TestLifecycleRouting(t *testing.T) {
	app := sim.New()
	app.CreateSurface(100, 200)
	app.Push(ability.Start{})
	app.Push(ability.LowMemory{})
	app.Push(ability.Stop{})
	app.DestroySurface()
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	want := []string{"create", "resumed", "memory", "suspended", "destroy"}
	if len(h.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Fatalf("call %d = %s, want %s", i, h.calls[i], want[i])
		}
	}
}

func TestLoggedLifecycleEventsProduceNoCallbacks(t *testing.T) {
	app := sim.New()
	app.Push(ability.Resume{})
	app.Push(ability.Pause{})
	app.Push(ability.SaveState{})
	app.Push(ability.Destroy{})
	app.Push(ability.ContentRectChange{})
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	if len(h.calls) != 0 || len(h.events) != 0 {
		t.Fatalf("calls = %v, events = %v, want none", h.calls, eventNames(h.events))
	}
}

func TestResizeReportsNativeSize(t *testing.T) {
	app := sim.New()
	app.CreateSurface(1080, 2720)
	app.Resize(540, 960)
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "resized")
	got := h.events[0].(event.SurfaceResized).Size
	if got.Width != 540 || got.Height != 960 {
		t.Fatalf("size = %dx%d, want 540x960", got.Width, got.Height)
	}
}

func TestResizeWithoutSurfaceReportsZero(t *testing.T) {
	app := sim.New()
	app.Resize(540, 960)
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "resized")
	got := h.events[0].(event.SurfaceResized).Size
	if got.Width != 0 || got.Height != 0 {
		t.Fatalf("size = %dx%d, want 0x0", got.Width, got.Height)
	}
}

func TestRedrawAndFocus(t *testing.T) {
	app := sim.New()
	app.Redraw()
	app.SetFocus(true)
	app.SetFocus(false)
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "redraw", "focused-true", "focused-false")
}

func TestFocusVisibleThroughWindow(t *testing.T) {
	app := sim.New()
	app.SetFocus(false)
	app.Finish()

	loop, h := newTestLoop(t, app)

	win, err := loop.Target().CreateWindow(window.DefaultAttributes())
	if err != nil {
		t.Fatalf("CreateWindow() error = %v", err)
	}
	if !win.HasFocus() {
		t.Fatal("window should start focused")
	}

	run(t, loop, h)

	if win.HasFocus() {
		t.Fatal("window should report unfocused after LostFocus")
	}
}

func TestConfigChangedRequiresSurface(t *testing.T) {
	app := sim.New()
	app.ChangeConfig(ability.Configuration{Language: "en"}, 2)
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	if len(h.events) != 0 {
		t.Fatalf("events = %v, want none before surface exists", eventNames(h.events))
	}
}

func TestConfigChangedEmitsScaleFactor(t *testing.T) {
	app := sim.New()
	app.CreateSurface(100, 200)
	app.ChangeConfig(ability.Configuration{}, 2.5)
	app.Finish()

	loop, h := newTestLoop(t, app)
	h.onEvent = func(loop *ActiveEventLoop, ev event.WindowEvent) {
		if sc, ok := ev.(event.ScaleFactorChanged); ok {
			sc.SizeWriter.Request(dpi.PhysicalSize{Width: 640, Height: 480})
		}
	}
	run(t, loop, h)

	var sc event.ScaleFactorChanged
	found := false
	for _, ev := range h.events {
		if s, ok := ev.(event.ScaleFactorChanged); ok {
			sc = s
			found = true
		}
	}
	if !found {
		t.Fatalf("events = %v, want a scale factor change", eventNames(h.events))
	}
	if sc.ScaleFactor != 2.5 {
		t.Fatalf("scale = %v, want 2.5", sc.ScaleFactor)
	}
	if req, ok := sc.SizeWriter.Requested(); !ok || req.Width != 640 || req.Height != 480 {
		t.Fatalf("requested = %v %t, want 640x480 true", req, ok)
	}
}

func TestTouchDownMoveUpSequence(t *testing.T) {
	app := sim.New()
	app.Touch(1, ability.TouchDown, ability.TouchPoint{ID: 7, X: 10, Y: 20})
	app.Touch(1, ability.TouchMove, ability.TouchPoint{ID: 7, X: 15, Y: 25})
	app.Touch(1, ability.TouchMove, ability.TouchPoint{ID: 7, X: 18, Y: 30})
	app.Touch(1, ability.TouchUp, ability.TouchPoint{ID: 7, X: 18, Y: 30})
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events,
		"entered", "button-pressed",
		"moved", "moved",
		"button-released", "left")

	entered := h.events[0].(event.PointerEntered)
	if !entered.Primary {
		t.Fatal("down contact must be primary")
	}
	if entered.Position.X != 10 || entered.Position.Y != 20 {
		t.Fatalf("entered at %v, want (10, 20)", entered.Position)
	}
	left := h.events[5].(event.PointerLeft)
	if left.Position == nil || left.Position.X != 18 {
		t.Fatalf("left position = %v, want (18, 30)", left.Position)
	}
	if !left.Primary {
		t.Fatal("up of the primary contact must stay primary")
	}
}

func TestTouchCancelSkipsRelease(t *testing.T) {
	app := sim.New()
	app.Touch(0, ability.TouchDown, ability.TouchPoint{ID: 3, X: 1, Y: 2})
	app.Touch(0, ability.TouchCancel, ability.TouchPoint{ID: 3, X: 1, Y: 2})
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "entered", "button-pressed", "left")
}

func TestSecondFingerTakesPrimary(t *testing.T) {
	app := sim.New()
	app.Touch(0, ability.TouchDown, ability.TouchPoint{ID: 1, X: 10, Y: 10})
	app.Touch(0, ability.TouchDown, ability.TouchPoint{ID: 2, X: 50, Y: 50})
	app.Touch(0, ability.TouchMove,
		ability.TouchPoint{ID: 1, X: 12, Y: 10},
		ability.TouchPoint{ID: 2, X: 52, Y: 50})
	app.Touch(0, ability.TouchUp, ability.TouchPoint{ID: 1, X: 12, Y: 10})
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events,
		"entered", "button-pressed",
		"entered", "button-pressed",
		"moved", "moved",
		"button-released", "left")

	// After the second down, finger 2 is primary; finger 1 is not.
	move1 := h.events[4].(event.PointerMoved)
	move2 := h.events[5].(event.PointerMoved)
	if move1.Primary {
		t.Fatal("finger 1 should have lost primary status")
	}
	if !move2.Primary {
		t.Fatal("finger 2 should be primary")
	}
	up1 := h.events[6].(event.PointerButton)
	if up1.Primary {
		t.Fatal("non-primary release must not be primary")
	}
}

func TestKeyActionsFoldToReleased(t *testing.T) {
	app := sim.New()
	app.Key(0, ability.KeyCodeA, ability.KeyActionDown)
	app.Key(0, ability.KeyCodeA, ability.KeyActionUp)
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "key-pressed", "key-released")

	down := h.events[0].(event.KeyboardInput)
	if down.Event.Repeat {
		t.Fatal("repeat is never reported")
	}
	if down.Event.Logical.Text != "a" {
		t.Fatalf("logical key = %q, want %q", down.Event.Logical.Text, "a")
	}
}

func TestUnknownKeyActionFoldsToReleased(t *testing.T) {
	app := sim.New()
	app.Key(0, ability.KeyCodeA, ability.KeyAction(42))
	app.Finish()

	loop, h := newTestLoop(t, app)
	run(t, loop, h)

	wantNames(t, h.events, "key-released")
	ki := h.events[0].(event.KeyboardInput)
	if ki.Event.State != event.Released {
		t.Fatalf("state = %v, want released", ki.Event.State)
	}
}

func TestExitBreaksLoop(t *testing.T) {
	app := sim.New()
	app.Redraw()
	app.Redraw()
	app.Redraw()
	// No Finish: only an exit can end the loop.

	loop, h := newTestLoop(t, app)
	h.onEvent = func(loop *ActiveEventLoop, ev event.WindowEvent) {
		loop.Exit()
	}
	run(t, loop, h)

	wantNames(t, h.events, "redraw")
	if !loop.Target().Exiting() {
		t.Fatal("target should report exiting")
	}
}

// exitingHandler requests an exit as soon as the loop announces itself.
type exitingHandler struct {
	recordingHandler
}

func (h *exitingHandler) NewEvents(loop *ActiveEventLoop, cause event.StartCause) {
	h.recordingHandler.NewEvents(loop, cause)
	loop.Exit()
}

func TestExitDuringNewEventsSkipsDispatch(t *testing.T) {
	app := sim.New()
	// A queued event that must never reach the handler.
	app.Redraw()

	loop, err := New(Config{App: app})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h := &exitingHandler{}
	if err := loop.RunApp(h); err != nil {
		t.Fatalf("RunApp() error = %v", err)
	}

	if len(h.events) != 0 || len(h.calls) != 0 {
		t.Fatalf("events = %v, calls = %v, want none", eventNames(h.events), h.calls)
	}
	if len(h.causes) != 1 {
		t.Fatalf("causes = %v, want one init", h.causes)
	}
}

func TestWakeCoalesces(t *testing.T) {
	app := sim.New()
	loop, h := newTestLoop(t, app)

	proxy := loop.Target().CreateProxy()
	for i := 0; i < 10; i++ {
		proxy.WakeUp()
	}
	app.Redraw()
	app.Finish()

	run(t, loop, h)

	// Ten wake-ups before the loop ran coalesce into at most one
	// iteration; none of them produce an application callback.
	wantNames(t, h.events, "redraw")
}

func TestProxyCloneSharesWaker(t *testing.T) {
	app := sim.New()
	loop, h := newTestLoop(t, app)

	clone := loop.Target().CreateProxy().Clone()
	clone.WakeUp()
	app.Finish()

	run(t, loop, h)
	if len(h.events) != 0 {
		t.Fatalf("events = %v, want none", eventNames(h.events))
	}
}

func TestCreateCustomCursorNotSupported(t *testing.T) {
	app := sim.New()
	loop, _ := newTestLoop(t, app)

	err := loop.Target().CreateCustomCursor(window.CustomCursorSource{})
	if err == nil {
		t.Fatal("CreateCustomCursor() should fail")
	}
}

func TestActiveLoopStaticAnswers(t *testing.T) {
	app := sim.New()
	loop, _ := newTestLoop(t, app)
	target := loop.Target()

	if got := target.AvailableMonitors(); len(got) != 0 {
		t.Fatalf("AvailableMonitors() = %v, want empty", got)
	}
	if got := target.PrimaryMonitor(); got != nil {
		t.Fatalf("PrimaryMonitor() = %v, want nil", got)
	}
	if got := target.SystemTheme(); got != window.ThemeUnknown {
		t.Fatalf("SystemTheme() = %v, want unknown", got)
	}
	target.ListenDeviceEvents(DeviceEventsAlways)
}

func TestControlFlowRoundTrip(t *testing.T) {
	app := sim.New()
	loop, _ := newTestLoop(t, app)
	target := loop.Target()

	if !target.ControlFlow().IsWait() {
		t.Fatal("default control flow should be wait")
	}
	target.SetControlFlow(Poll())
	if !target.ControlFlow().IsPoll() {
		t.Fatal("control flow should be poll after SetControlFlow")
	}
}
