package sticky

import (
	"fmt"
	"math"
)

// Frame is a header's bounding box in a scroll view's coordinate space.
// Y is the top edge relative to the top of the viewport and goes negative
// once the header scrolls past it. Only Y and Height drive stickiness.
type Frame struct {
	X, Y          float64
	Width, Height float64
}

// FrameFromRect converts an integer cell rect into a Frame.
func FrameFromRect(r Rect) Frame {
	return Frame{
		X:      float64(r.X),
		Y:      float64(r.Y),
		Width:  float64(r.Width),
		Height: float64(r.Height),
	}
}

// MinY returns the top edge.
func (f Frame) MinY() float64 {
	return f.Y
}

// MaxY returns the bottom edge (exclusive).
func (f Frame) MaxY() float64 {
	return f.Y + f.Height
}

// Valid reports whether every coordinate is finite and the height is not
// negative. Invalid frames never stick and never push other headers.
func (f Frame) Valid() bool {
	for _, v := range [...]float64{f.X, f.Y, f.Width, f.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return f.Height >= 0
}

func (f Frame) String() string {
	return fmt.Sprintf("{y=%g h=%g}", f.Y, f.Height)
}
