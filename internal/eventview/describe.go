package eventview

import (
	"fmt"

	"github.com/richerfu/winit/event"
)

// Record is one dispatched callback, flattened for display.
type Record struct {
	Seq    int
	Name   string
	Detail string
}

// Lifecycle builds a record for a non-window callback (resumed, suspended,
// surface lifecycle, memory warning).
func Lifecycle(seq int, name string) Record {
	return Record{Seq: seq, Name: name}
}

// Describe flattens a portable window event into a record.
func Describe(seq int, ev event.WindowEvent) Record {
	switch ev := ev.(type) {
	case event.PointerEntered:
		return Record{seq, "pointer-entered", fmt.Sprintf("x=%.0f y=%.0f primary=%t", ev.Position.X, ev.Position.Y, ev.Primary)}
	case event.PointerMoved:
		return Record{seq, "pointer-moved", fmt.Sprintf("x=%.0f y=%.0f primary=%t", ev.Position.X, ev.Position.Y, ev.Primary)}
	case event.PointerButton:
		return Record{seq, "pointer-button", fmt.Sprintf("state=%s x=%.0f y=%.0f primary=%t", ev.State, ev.Position.X, ev.Position.Y, ev.Primary)}
	case event.PointerLeft:
		detail := fmt.Sprintf("primary=%t", ev.Primary)
		if ev.Position != nil {
			detail = fmt.Sprintf("x=%.0f y=%.0f primary=%t", ev.Position.X, ev.Position.Y, ev.Primary)
		}
		return Record{seq, "pointer-left", detail}
	case event.KeyboardInput:
		key := ev.Event.Logical.Text
		if key == "" {
			key = fmt.Sprintf("named(%d)", ev.Event.Logical.Named)
		}
		return Record{seq, "keyboard-input", fmt.Sprintf("state=%s key=%s", ev.Event.State, key)}
	case event.SurfaceResized:
		return Record{seq, "surface-resized", fmt.Sprintf("%dx%d", ev.Size.Width, ev.Size.Height)}
	case event.RedrawRequested:
		return Record{Seq: seq, Name: "redraw-requested"}
	case event.Focused:
		return Record{seq, "focused", fmt.Sprintf("gained=%t", ev.Gained)}
	case event.ScaleFactorChanged:
		return Record{seq, "scale-factor-changed", fmt.Sprintf("scale=%.2f", ev.ScaleFactor)}
	default:
		return Record{seq, "window-event", fmt.Sprintf("%T", ev)}
	}
}

// Line renders a record as one plain-text line, used by the non-TTY dump.
func (r Record) Line() string {
	if r.Detail == "" {
		return fmt.Sprintf("%4d  %s", r.Seq, r.Name)
	}
	return fmt.Sprintf("%4d  %-22s %s", r.Seq, r.Name, r.Detail)
}
