package eventloop

import "github.com/richerfu/winit/ability"

// EventLoopProxy wakes the event loop from other goroutines. Proxies are
// cheap to clone; clones share the underlying native waker, so a wake from
// any clone targets the same loop. Redundant wakes coalesce into a single
// loop iteration.
//
// WakeUp is safe to call at any time, including before the loop has started
// and after it has exited.
type EventLoopProxy struct {
	waker ability.Waker
}

// WakeUp requests an out-of-band iteration of the event loop.
func (p *EventLoopProxy) WakeUp() {
	p.waker.Wake()
}

// Clone returns a proxy sharing the same waker.
func (p *EventLoopProxy) Clone() *EventLoopProxy {
	return &EventLoopProxy{waker: p.waker}
}
