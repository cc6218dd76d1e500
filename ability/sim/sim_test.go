package sim

import (
	"sync"
	"testing"
	"time"

	"github.com/richerfu/winit/ability"
)

func TestRunLoopStopsWhenCallbackReturnsFalse(t *testing.T) {
	app := New()
	app.Redraw()
	app.Redraw()

	var seen int
	app.RunLoop(func(ev ability.Event) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Fatalf("saw %d events, want 1", seen)
	}
}

func TestRunLoopDrainsThenReturnsAfterFinish(t *testing.T) {
	app := New()
	app.Redraw()
	app.Redraw()
	app.Finish()

	var seen int
	app.RunLoop(func(ev ability.Event) bool {
		seen++
		return true
	})
	if seen != 2 {
		t.Fatalf("saw %d events, want 2", seen)
	}
}

func TestRunLoopBlocksUntilEventArrives(t *testing.T) {
	app := New()

	done := make(chan []ability.Event, 1)
	go func() {
		var got []ability.Event
		app.RunLoop(func(ev ability.Event) bool {
			got = append(got, ev)
			return true
		})
		done <- got
	}()

	time.Sleep(10 * time.Millisecond)
	app.Redraw()
	app.Finish()

	select {
	case got := <-done:
		if len(got) != 1 {
			t.Fatalf("delivered %d events, want 1", len(got))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RunLoop did not observe the late event")
	}
}

func TestWakesCoalesce(t *testing.T) {
	app := New()
	w := app.NewWaker()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Wake()
		}()
	}
	wg.Wait()
	app.Finish()

	var wakes int
	app.RunLoop(func(ev ability.Event) bool {
		if _, ok := ev.(ability.UserWake); ok {
			wakes++
		}
		return true
	})
	if wakes != 1 {
		t.Fatalf("observed %d wakes, want exactly 1", wakes)
	}
}

func TestSurfaceLifecycle(t *testing.T) {
	app := New()
	if app.NativeWindow() != nil {
		t.Fatal("new app should have no surface")
	}

	app.CreateSurface(640, 480)
	nw := app.NativeWindow()
	if nw == nil {
		t.Fatal("surface should exist after CreateSurface")
	}
	if nw.Width() != 640 || nw.Height() != 480 {
		t.Fatalf("size = %dx%d, want 640x480", nw.Width(), nw.Height())
	}
	if h, err := nw.Handle(); err != nil || h == 0 {
		t.Fatalf("Handle() = %v, %v, want non-null", h, err)
	}

	app.Resize(800, 600)
	if nw.Width() != 800 || nw.Height() != 600 {
		t.Fatalf("size after resize = %dx%d, want 800x600", nw.Width(), nw.Height())
	}

	app.DestroySurface()
	if app.NativeWindow() != nil {
		t.Fatal("surface should be gone after DestroySurface")
	}
}
