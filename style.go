package sticky

// Attr represents text attributes as a bitfield for cheap comparison.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrReverse swaps foreground and background colors.
	AttrReverse
)

// Style is a set of text attributes. The zero value is the terminal default.
type Style struct {
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Attrs == other.Attrs
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
