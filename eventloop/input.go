package eventloop

import (
	"fmt"

	"github.com/richerfu/winit/ability"
	"github.com/richerfu/winit/dpi"
	"github.com/richerfu/winit/event"
	"github.com/richerfu/winit/internal/keycodes"
)

func (el *EventLoop) handleInput(in ability.InputEvent, handler ApplicationHandler) {
	switch in := in.(type) {
	case ability.TouchEvent:
		el.handleTouch(in, handler)
	case ability.KeyEvent:
		el.handleKey(in, handler)
	default:
		el.logger.Warn("unknown native input event", "event", fmt.Sprintf("%T", in))
	}
}

// handleTouch turns one native touch action into the ordered portable
// pointer events:
//
//	Down   -> PointerEntered, PointerButton(pressed)
//	Move   -> PointerMoved
//	Up     -> PointerButton(released), PointerLeft
//	Cancel -> PointerLeft
//
// The most recent Down designates the primary finger; Move/Up/Cancel compare
// against it without resetting it.
func (el *EventLoop) handleTouch(te ability.TouchEvent, handler ApplicationHandler) {
	device := event.DeviceID(te.DeviceID)

	for _, pt := range te.Points {
		pos := dpi.PhysicalPosition{X: pt.X, Y: pt.Y}
		finger := event.FingerID(pt.ID)
		force := event.Force(pt.Force)

		el.logger.Debug("touch input",
			"device", int64(device), "action", te.Action.String(),
			"finger", pt.ID, "x", pt.X, "y", pt.Y)

		// Tool type (finger/stylus/mouse) is not plumbed through from
		// the native side yet; every pointer is PointerUnknown.
		kind := event.PointerUnknown

		switch te.Action {
		case ability.TouchDown:
			el.primaryPointer = finger
			el.hasPrimary = true
			el.windowEvent(handler, event.PointerEntered{
				DeviceID: device,
				Position: pos,
				Primary:  true,
				Kind:     kind,
			})
			el.windowEvent(handler, event.PointerButton{
				DeviceID: device,
				State:    event.Pressed,
				Position: pos,
				Primary:  true,
				Kind:     kind,
				Force:    force,
			})

		case ability.TouchMove:
			el.windowEvent(handler, event.PointerMoved{
				DeviceID: device,
				Position: pos,
				Primary:  el.hasPrimary && el.primaryPointer == finger,
				Kind:     kind,
			})

		case ability.TouchUp, ability.TouchCancel:
			primary := el.hasPrimary && el.primaryPointer == finger
			if te.Action == ability.TouchUp {
				el.windowEvent(handler, event.PointerButton{
					DeviceID: device,
					State:    event.Released,
					Position: pos,
					Primary:  primary,
					Kind:     kind,
					Force:    force,
				})
			}
			left := pos
			el.windowEvent(handler, event.PointerLeft{
				DeviceID: device,
				Position: &left,
				Primary:  primary,
				Kind:     kind,
			})

		default:
			// The native source enumerates only Down/Move/Up/Cancel;
			// anything else is a broken upstream contract.
			panic(fmt.Sprintf("impossible touch action %d", te.Action))
		}
	}
}

func (el *EventLoop) handleKey(ke ability.KeyEvent, handler ApplicationHandler) {
	state := event.Released
	if ke.Action == ability.KeyActionDown {
		state = event.Pressed
	}

	el.windowEvent(handler, event.KeyboardInput{
		DeviceID: event.DeviceID(ke.DeviceID),
		Event: event.KeyEvent{
			State:       state,
			PhysicalKey: keycodes.ToPhysicalKey(ke.Code),
			Logical:     keycodes.ToLogical(ke.Code),
			Location:    keycodes.ToLocation(ke.Code),
			// The runtime does not surface OS key repeat.
			Repeat: false,
		},
	})
}
