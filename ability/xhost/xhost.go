// Package xhost implements ability.App on top of a desktop X11 window, so
// the event loop can be exercised interactively without a device. The left
// mouse button emulates a single-finger touch sequence, keyboard input is
// mapped onto native key codes, and focus/resize/expose notifications are
// translated to their ability equivalents. Development tool only; fidelity
// to a real device is approximate.
package xhost

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/richerfu/winit/ability"
)

const wakeAtomName = "_WINIT_WAKE"

// Config holds creation parameters for the host window.
type Config struct {
	Width  uint32
	Height uint32
	Title  string
	Logger *slog.Logger
}

// Host is an ability.App backed by one X11 window.
type Host struct {
	xu     *xgbutil.XUtil
	win    *xwindow.Window
	logger *slog.Logger

	wakeAtom      xproto.Atom
	protocolsAtom xproto.Atom
	deleteAtom    xproto.Atom

	native  *nativeWindow
	pressed bool
}

// New connects to the X server and creates the host window.
func New(cfg Config) (*Host, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("host window requires a non-zero size")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, fmt.Errorf("failed to generate window id: %w", err)
	}
	if err := win.CreateChecked(xu.RootWin(), 0, 0, int(cfg.Width), int(cfg.Height),
		xproto.CwBackPixel, 0x000000); err != nil {
		return nil, fmt.Errorf("failed to create host window: %w", err)
	}
	if err := win.Listen(
		xproto.EventMaskButtonPress,
		xproto.EventMaskButtonRelease,
		xproto.EventMaskPointerMotion,
		xproto.EventMaskKeyPress,
		xproto.EventMaskKeyRelease,
		xproto.EventMaskStructureNotify,
		xproto.EventMaskExposure,
		xproto.EventMaskFocusChange,
	); err != nil {
		return nil, fmt.Errorf("failed to select window events: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "winit xhost"
	}
	_ = ewmh.WmNameSet(xu, win.Id, title)

	h := &Host{
		xu:     xu,
		win:    win,
		logger: logger,
		native: newNativeWindow(win.Id, cfg.Width, cfg.Height),
	}

	if h.wakeAtom, err = internAtom(xu, wakeAtomName); err != nil {
		return nil, err
	}
	if h.protocolsAtom, err = internAtom(xu, "WM_PROTOCOLS"); err != nil {
		return nil, err
	}
	if h.deleteAtom, err = internAtom(xu, "WM_DELETE_WINDOW"); err != nil {
		return nil, err
	}
	if err := xproto.ChangePropertyChecked(xu.Conn(), xproto.PropModeReplace, win.Id,
		h.protocolsAtom, xproto.AtomAtom, 32, 1, atomBytes(h.deleteAtom)).Check(); err != nil {
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	win.Map()
	return h, nil
}

func internAtom(xu *xgbutil.XUtil, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

func atomBytes(a xproto.Atom) []byte {
	return []byte{byte(a), byte(a >> 8), byte(a >> 16), byte(a >> 24)}
}

// RunLoop registers the X event callbacks and blocks in the X dispatch loop.
// The surface-create and start notifications are delivered before the first
// X event, matching the ability lifecycle order.
func (h *Host) RunLoop(fn func(ability.Event) bool) {
	deliver := func(ev ability.Event) {
		if !fn(ev) {
			xevent.Quit(h.xu)
		}
	}

	xevent.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		if ev.Detail != 1 {
			return
		}
		h.pressed = true
		deliver(h.touch(ability.TouchDown, float64(ev.EventX), float64(ev.EventY)))
	}).Connect(h.xu, h.win.Id)

	xevent.MotionNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		if !h.pressed {
			return
		}
		deliver(h.touch(ability.TouchMove, float64(ev.EventX), float64(ev.EventY)))
	}).Connect(h.xu, h.win.Id)

	xevent.ButtonReleaseFun(func(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		if ev.Detail != 1 || !h.pressed {
			return
		}
		h.pressed = false
		deliver(h.touch(ability.TouchUp, float64(ev.EventX), float64(ev.EventY)))
	}).Connect(h.xu, h.win.Id)

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		deliver(h.key(ev.Detail, ability.KeyActionDown))
	}).Connect(h.xu, h.win.Id)

	xevent.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
		deliver(h.key(ev.Detail, ability.KeyActionUp))
	}).Connect(h.xu, h.win.Id)

	xevent.FocusInFun(func(xu *xgbutil.XUtil, ev xevent.FocusInEvent) {
		deliver(ability.GainedFocus{})
	}).Connect(h.xu, h.win.Id)

	xevent.FocusOutFun(func(xu *xgbutil.XUtil, ev xevent.FocusOutEvent) {
		deliver(ability.LostFocus{})
	}).Connect(h.xu, h.win.Id)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		h.native.setSize(uint32(ev.Width), uint32(ev.Height))
		deliver(ability.WindowResize{})
	}).Connect(h.xu, h.win.Id)

	xevent.ExposeFun(func(xu *xgbutil.XUtil, ev xevent.ExposeEvent) {
		deliver(ability.WindowRedraw{})
	}).Connect(h.xu, h.win.Id)

	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		switch ev.Type {
		case h.wakeAtom:
			deliver(ability.UserWake{})
		case h.protocolsAtom:
			if xproto.Atom(ev.Data.Data32[0]) == h.deleteAtom {
				h.logger.Info("host window close requested")
				deliver(ability.Stop{})
				deliver(ability.SurfaceDestroy{})
				deliver(ability.Destroy{})
				xevent.Quit(xu)
			}
		}
	}).Connect(h.xu, h.win.Id)

	deliver(ability.SurfaceCreate{})
	deliver(ability.Start{})

	xevent.Main(h.xu)
}

func (h *Host) touch(action ability.TouchAction, x, y float64) ability.Event {
	return ability.Input{Event: ability.TouchEvent{
		Action: action,
		Points: []ability.TouchPoint{{ID: 0, X: x, Y: y, Force: 1}},
	}}
}

func (h *Host) key(detail xproto.Keycode, action ability.KeyAction) ability.Event {
	return ability.Input{Event: ability.KeyEvent{
		Code:   keysymToCode(keybind.LookupString(h.xu, 0, detail)),
		Action: action,
	}}
}

// NativeWindow returns the X window as the native surface. It exists for the
// lifetime of the host.
func (h *Host) NativeWindow() ability.NativeWindow { return h.native }

// Scale is fixed at 1; the host does not model display scaling.
func (h *Host) Scale() float32 { return 1 }

// Config returns a static development configuration.
func (h *Host) Config() ability.Configuration {
	return ability.Configuration{Density: 1}
}

// ContentRect covers the full window.
func (h *Host) ContentRect() ability.Rect {
	return ability.Rect{
		Right:  int32(h.native.Width()),
		Bottom: int32(h.native.Height()),
	}
}

// NewWaker returns a waker that posts a client message to the host window.
// Safe from any goroutine; xgb serializes requests internally.
func (h *Host) NewWaker() ability.Waker {
	return waker{h: h}
}

type waker struct {
	h *Host
}

func (w waker) Wake() {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.h.win.Id,
		Type:   w.h.wakeAtom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{0, 0, 0, 0, 0}),
	}
	if err := xproto.SendEventChecked(
		w.h.xu.Conn(),
		false,
		w.h.win.Id,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check(); err != nil {
		w.h.logger.Error("failed to wake host loop", "error", err)
	}
}

type nativeWindow struct {
	id     xproto.Window
	width  atomic.Uint32
	height atomic.Uint32
}

func newNativeWindow(id xproto.Window, width, height uint32) *nativeWindow {
	w := &nativeWindow{id: id}
	w.width.Store(width)
	w.height.Store(height)
	return w
}

func (w *nativeWindow) setSize(width, height uint32) {
	w.width.Store(width)
	w.height.Store(height)
}

func (w *nativeWindow) Width() uint32  { return w.width.Load() }
func (w *nativeWindow) Height() uint32 { return w.height.Load() }

func (w *nativeWindow) Handle() (uintptr, error) {
	return uintptr(w.id), nil
}
