package sticky

// Cell is a single character cell in a Buffer. Wide characters occupy two
// cells; the second one is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a Cell, detecting the rune's display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true for the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// wideRanges lists the code point ranges rendered two cells wide:
// Hangul Jamo, CJK, Hangul syllables, fullwidth forms and most emoji.
var wideRanges = [...][2]rune{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x1F300, 0x1F9FF},
	{0x1FA00, 0x1FAFF},
	{0x20000, 0x3FFFF},
}

// RuneWidth returns the display width of a rune in terminal cells.
func RuneWidth(r rune) int {
	if r < 0x1100 {
		return 1
	}
	for _, rg := range wideRanges {
		if r < rg[0] {
			return 1
		}
		if r <= rg[1] {
			return 2
		}
	}
	return 1
}
