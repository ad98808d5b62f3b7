package sticky

import "strings"

// Buffer is a 2D grid of cells that a ScrollView paints into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with blanks.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetRune writes r at (x, y), splitting any wide character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	blank := NewCell(' ', NewStyle())
	width := RuneWidth(r)

	if b.Cell(x, y).IsContinuation() && x > 0 {
		b.SetCell(x-1, y, blank)
	}
	if b.Cell(x, y).Width == 2 {
		b.SetCell(x+1, y, blank)
	}
	if width == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, NewCell(' ', style))
			return
		}
		if b.Cell(x+1, y).Width == 2 {
			b.SetCell(x+2, y, blank)
		}
		b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 2})
		b.SetCell(x+1, y, Cell{Style: style, Width: 0})
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 1})
}

// SetStringClipped writes s starting at (x, y), drawing only the cells
// inside clip. It returns the display width of s.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	total := 0
	curX := x
	for _, r := range s {
		w := RuneWidth(r)
		if curX >= clip.Right() {
			total += w
			curX += w
			continue
		}
		if y >= clip.Y && y < clip.Bottom() && curX >= clip.X && curX+w <= clip.Right() {
			b.SetRune(curX, y, r, style)
		}
		total += w
		curX += w
	}
	return total
}

// SetString writes s starting at (x, y), clipped to the buffer.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// Fill fills rect (clipped to the buffer) with r in style.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetCell(x, y, NewCell(r, style))
		}
	}
}

// Clear resets every cell to a default blank.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the buffer dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	b.cells = make([]Cell, width*height)
	b.width = width
	b.height = height
	b.Clear()
}

// Lines returns each row as a string with trailing spaces removed.
// Continuation cells are skipped.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// String renders the buffer for debugging, one row per line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	return strings.Join(b.Lines(), "\n")
}
