package eventloop

import "github.com/richerfu/winit/dpi"

// Monitor is a handle to a physical display. The OS exposes no monitor
// enumeration: AvailableMonitors always returns an empty slice and
// PrimaryMonitor returns nil, so no Monitor value is ever constructed.
// The accessors exist only to keep the portable API shape.
type Monitor struct{}

func (Monitor) Name() string {
	panic("no monitor handles exist on this platform")
}

func (Monitor) Position() dpi.PhysicalPosition {
	panic("no monitor handles exist on this platform")
}

func (Monitor) ScaleFactor() float64 {
	panic("no monitor handles exist on this platform")
}

func (Monitor) CurrentVideoMode() *VideoMode {
	panic("no monitor handles exist on this platform")
}

func (Monitor) VideoModes() []VideoMode {
	panic("no monitor handles exist on this platform")
}

// VideoMode describes one display mode of a Monitor. Unreachable for the
// same reason as Monitor.
type VideoMode struct{}

func (VideoMode) Size() dpi.PhysicalSize {
	panic("no video mode handles exist on this platform")
}

func (VideoMode) BitDepth() uint16 {
	panic("no video mode handles exist on this platform")
}

func (VideoMode) RefreshRateMillihertz() uint32 {
	panic("no video mode handles exist on this platform")
}
