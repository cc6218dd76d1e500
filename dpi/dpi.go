// Package dpi holds the physical-pixel geometry types shared by the event
// vocabulary and the window facade. All values are in device pixels; this
// backend reports a scale factor but never converts to logical units itself.
package dpi

// PhysicalPosition is a position in physical pixels.
type PhysicalPosition struct {
	X float64
	Y float64
}

// PhysicalSize is a size in physical pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

// PhysicalInsets describes insets (safe areas, content margins) in physical
// pixels, measured inward from each edge.
type PhysicalInsets struct {
	Top    uint32
	Left   uint32
	Bottom uint32
	Right  uint32
}
