package eventloop

import (
	"fmt"
	"time"
)

type controlFlowKind int

const (
	kindWait controlFlowKind = iota
	kindPoll
	kindWaitUntil
)

// ControlFlow is the application's stated preference for how eagerly the
// loop should be re-driven. The zero value is Wait. The backend records the
// preference and exposes it back through ControlFlow(); enforcement of
// WaitUntil deadlines is delegated to the native dispatch primitive.
type ControlFlow struct {
	kind     controlFlowKind
	deadline time.Time
}

// Poll asks for continuous re-dispatch, even with no events pending.
func Poll() ControlFlow { return ControlFlow{kind: kindPoll} }

// Wait asks to sleep until an event arrives.
func Wait() ControlFlow { return ControlFlow{} }

// WaitUntil asks to sleep until an event arrives or the deadline passes.
func WaitUntil(deadline time.Time) ControlFlow {
	return ControlFlow{kind: kindWaitUntil, deadline: deadline}
}

// IsPoll reports whether the mode is Poll.
func (c ControlFlow) IsPoll() bool { return c.kind == kindPoll }

// IsWait reports whether the mode is plain Wait.
func (c ControlFlow) IsWait() bool { return c.kind == kindWait }

// Deadline returns the WaitUntil deadline, if the mode is WaitUntil.
func (c ControlFlow) Deadline() (time.Time, bool) {
	return c.deadline, c.kind == kindWaitUntil
}

func (c ControlFlow) String() string {
	switch c.kind {
	case kindPoll:
		return "poll"
	case kindWaitUntil:
		return fmt.Sprintf("wait-until(%s)", c.deadline.Format(time.RFC3339Nano))
	default:
		return "wait"
	}
}
