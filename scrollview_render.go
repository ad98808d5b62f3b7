package sticky

import "math"

// Render measures every header and paints the visible part of the view
// into the top-left of buf. Normal items paint first in document order;
// pinned headers paint afterwards, shifted by their offset, so they cover
// the content scrolling beneath them.
func (v *ScrollView) Render(buf *Buffer) {
	v.Measure()

	viewport := NewRect(0, 0, v.width, v.height).Intersect(buf.Rect())
	buf.Fill(viewport, ' ', NewStyle())

	var front []*Item
	for _, it := range v.items {
		if it.header != nil && it.header.Placement().Priority == PriorityFront {
			front = append(front, it)
			continue
		}
		v.paintItem(buf, it, it.rect.Translate(0, -v.scrollY), viewport)
	}

	for _, it := range front {
		dy := int(math.Round(it.header.Placement().Offset))
		v.paintItem(buf, it, it.rect.Translate(0, dy-v.scrollY), viewport)
	}
}

// paintItem draws it at screen rect r, clipped to clip.
func (v *ScrollView) paintItem(buf *Buffer, it *Item, r, clip Rect) {
	visible := r.Intersect(clip)
	if visible.IsEmpty() {
		return
	}

	style := v.textStyle
	if it.header != nil {
		style = v.headerStyle
	}
	if it.style != nil {
		style = *it.style
	}

	if it.header != nil {
		// Headers span the full row like a title bar.
		buf.Fill(visible, ' ', style)
	}

	inner := r.Width - 2*it.padding
	for i, row := range it.rows {
		y := r.Y + it.padding + i
		if y < clip.Y || y >= clip.Bottom() {
			continue
		}
		x := r.X + it.padding
		if it.header != nil {
			x += max(0, (inner-stringWidth(row))/2)
		}
		buf.SetStringClipped(x, y, row, style, clip)
	}
}
