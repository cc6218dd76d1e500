package window

import (
	"errors"
	"sync"
	"testing"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/ability/sim"
	"github.com/richerfu/winit/dpi"
	"github.com/richerfu/winit/internal/focus"
)

func newTestWindow(t *testing.T, app ability.App) *Window {
	t.Helper()
	w, err := New(app, focus.New(), nil, DefaultAttributes())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func TestSurfaceSizeFallback(t *testing.T) {
	app := sim.New()
	w := newTestWindow(t, app)

	got := w.SurfaceSize()
	if got.Width != FallbackWidth || got.Height != FallbackHeight {
		t.Fatalf("SurfaceSize() = %dx%d, want %dx%d", got.Width, got.Height, FallbackWidth, FallbackHeight)
	}
	if outer := w.OuterSize(); outer != got {
		t.Fatalf("OuterSize() = %v, want %v", outer, got)
	}
}

func TestSurfaceSizeWithSurface(t *testing.T) {
	app := sim.New()
	app.CreateSurface(720, 1280)
	w := newTestWindow(t, app)

	got := w.SurfaceSize()
	if got.Width != 720 || got.Height != 1280 {
		t.Fatalf("SurfaceSize() = %dx%d, want 720x1280", got.Width, got.Height)
	}
}

func TestRequestSurfaceSizeNeverApplies(t *testing.T) {
	app := sim.New()
	w := newTestWindow(t, app)

	if got := w.RequestSurfaceSize(dpi.PhysicalSize{Width: 640, Height: 480}); got != nil {
		t.Fatalf("RequestSurfaceSize() = %v, want nil", got)
	}
}

func TestHandleUnavailableWithoutSurface(t *testing.T) {
	app := sim.New()
	w := newTestWindow(t, app)

	if _, err := w.Handle(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Handle() error = %v, want ErrUnavailable", err)
	}

	app.CreateSurface(100, 100)
	h, err := w.Handle()
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if h == 0 {
		t.Fatal("Handle() = 0, want non-null")
	}
}

func TestUnsupportedOperations(t *testing.T) {
	app := sim.New()
	w := newTestWindow(t, app)

	ops := map[string]error{
		"SetCursorPosition": w.SetCursorPosition(dpi.PhysicalPosition{}),
		"SetCursorGrab":     w.SetCursorGrab(CursorGrabNone),
		"SetCursorHittest":  w.SetCursorHittest(true),
		"DragWindow":        w.DragWindow(),
		"DragResizeWindow":  w.DragResizeWindow(ResizeEast),
	}
	for name, err := range ops {
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("%s error = %v, want ErrNotSupported", name, err)
		}
	}
	if _, err := w.OuterPosition(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("OuterPosition error = %v, want ErrNotSupported", err)
	}
}

func TestHasFocusConcurrentVisibility(t *testing.T) {
	f := focus.New()
	w, err := New(sim.New(), f, nil, DefaultAttributes())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !w.HasFocus() {
		t.Fatal("window should start focused")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Set(false)
	}()
	wg.Wait()

	if w.HasFocus() {
		t.Fatal("focus loss should be visible across goroutines")
	}
}

func TestNoOpMutatorsKeepDefaults(t *testing.T) {
	app := sim.New()
	w := newTestWindow(t, app)

	w.SetTitle("ignored")
	if got := w.Title(); got != "" {
		t.Fatalf("Title() = %q, want empty", got)
	}
	w.SetResizable(true)
	if w.IsResizable() {
		t.Fatal("IsResizable() = true, want false")
	}
	w.SetMaximized(true)
	if w.IsMaximized() {
		t.Fatal("IsMaximized() = true, want false")
	}
	w.SetFullscreen(&Fullscreen{Borderless: true})
	if got := w.GetFullscreen(); got != nil {
		t.Fatalf("GetFullscreen() = %v, want nil", got)
	}
	if got := w.GetTheme(); got != ThemeUnknown {
		t.Fatalf("GetTheme() = %v, want unknown", got)
	}
	if got := w.EnabledButtons(); got != AllButtons {
		t.Fatalf("EnabledButtons() = %v, want all", got)
	}
	if w.ID() != PrimaryID {
		t.Fatalf("ID() = %v, want primary", w.ID())
	}
	if got := w.ScaleFactor(); got != 1.0 {
		t.Fatalf("ScaleFactor() = %v, want 1", got)
	}
}
