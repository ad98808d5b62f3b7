// layout.go re-exports geometry types from internal/layout.
package sticky

import "github.com/grindlemire/go-sticky/internal/layout"

// Rect is an integer cell rectangle.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
