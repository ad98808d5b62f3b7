package sticky

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable byte slice.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// MoveTo moves the cursor to 0-indexed (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

// BeginSyncUpdate asks the terminal to buffer output until EndSyncUpdate.
// Terminals that don't support it ignore the sequence.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026h"...)
}

// EndSyncUpdate flushes a synchronized update.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026l"...)
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits a reset followed by the style's attributes.
func (e *escBuilder) SetStyle(s Style) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteANSI writes buf to w as a full-screen frame: every row is addressed
// explicitly and styles are only re-emitted when they change. The frame is
// wrapped in a synchronized update so terminals show it atomically.
func WriteANSI(w io.Writer, buf *Buffer) error {
	esc := newEscBuilder(buf.Width() * buf.Height() * 2)
	esc.BeginSyncUpdate()

	for y := 0; y < buf.Height(); y++ {
		esc.MoveTo(0, y)
		cur := NewStyle()
		esc.ResetStyle()
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			if !cell.Style.Equal(cur) {
				esc.SetStyle(cell.Style)
				cur = cell.Style
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			esc.WriteRune(r)
		}
	}

	esc.ResetStyle()
	esc.EndSyncUpdate()
	_, err := w.Write(esc.buf)
	return err
}
