package sticky

import (
	"slices"

	"github.com/google/uuid"

	"github.com/grindlemire/go-sticky/internal/debug"
)

// Item is one entry of a ScrollView: a block of wrapped text, optionally
// carrying sticky header behavior.
type Item struct {
	text    string
	padding int
	style   *Style
	header  *Header

	rows []string
	rect Rect // content space
}

// Text returns the item's text.
func (it *Item) Text() string {
	return it.text
}

// Header returns the item's sticky behavior, or nil for plain content.
func (it *Item) Header() *Header {
	return it.header
}

// Rect returns the item's rect in content space from the last layout.
func (it *Item) Rect() Rect {
	return it.rect
}

// ScrollView is a vertically scrolling column of items. It owns the
// coordinate space headers are measured in and, when sticky headers are
// enabled, the Provider they share.
type ScrollView struct {
	width, height int

	sticky      bool
	spaceName   string
	namespace   uuid.UUID
	diagnostics func(string)
	metrics     *Metrics
	headerStyle Style
	textStyle   Style

	provider  *Provider
	items     []*Item
	nextIndex int

	scrollY       int
	contentHeight int
	dirty         bool
}

// NewScrollView creates an empty view with a viewport of width x height cells.
func NewScrollView(width, height int, opts ...Option) *ScrollView {
	v := &ScrollView{
		width:       max(width, 0),
		height:      max(height, 0),
		spaceName:   DefaultSpaceName,
		headerStyle: NewStyle().Bold().Reverse(),
		textStyle:   NewStyle(),
		dirty:       true,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.namespace == uuid.Nil {
		v.namespace = uuid.New()
	}
	if v.sticky {
		v.provider = NewProvider(WithName(v.spaceName), WithMetrics(v.metrics))
	}
	return v
}

// Provider returns the view's provider, or nil when sticky headers are off.
func (v *ScrollView) Provider() *Provider {
	return v.provider
}

// Space returns the view's coordinate space at the current scroll offset.
func (v *ScrollView) Space() Space {
	return NewSpace(v.spaceName, 0, v.scrollY)
}

// AddText appends a plain content item.
func (v *ScrollView) AddText(text string, opts ...ItemOption) *Item {
	it := &Item{text: sanitizeText(text)}
	for _, opt := range opts {
		opt(it)
	}
	v.items = append(v.items, it)
	v.dirty = true
	return it
}

// AddHeader appends an item that sticks to the top of the viewport.
func (v *ScrollView) AddHeader(text string, opts ...ItemOption) *Item {
	it := v.AddText(text, opts...)

	var source Source
	if v.provider != nil {
		source = v.provider
	}
	hopts := []HeaderOption{WithHeaderMetrics(v.metrics)}
	if v.diagnostics != nil {
		hopts = append(hopts, WithHeaderDiagnostics(v.diagnostics))
	}
	it.header = NewHeader(IndexedHeaderID(v.namespace, v.nextIndex), source, hopts...)
	v.nextIndex++
	return it
}

// Remove deletes it from the view. A removed header leaves the registry.
func (v *ScrollView) Remove(it *Item) {
	i := slices.Index(v.items, it)
	if i < 0 {
		return
	}
	v.items = slices.Delete(v.items, i, i+1)
	if it.header != nil {
		it.header.Close()
	}
	v.dirty = true
}

// Items returns the view's items in order.
func (v *ScrollView) Items() []*Item {
	return slices.Clone(v.items)
}

// Headers returns the sticky behavior of every header item in order.
func (v *ScrollView) Headers() []*Header {
	var out []*Header
	for _, it := range v.items {
		if it.header != nil {
			out = append(out, it.header)
		}
	}
	return out
}

// Close detaches every header from the provider.
func (v *ScrollView) Close() {
	for _, h := range v.Headers() {
		h.Close()
	}
}

// Resize changes the viewport size. Text is re-wrapped on the next layout.
func (v *ScrollView) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.dirty = true
}

// Size returns the viewport size.
func (v *ScrollView) Size() (width, height int) {
	return v.width, v.height
}

// --- Scrolling ---

// ScrollOffset returns the current vertical scroll offset.
func (v *ScrollView) ScrollOffset() int {
	return v.scrollY
}

// ContentHeight returns the total height of all items.
func (v *ScrollView) ContentHeight() int {
	v.layout()
	return v.contentHeight
}

// MaxScroll returns the largest valid scroll offset.
func (v *ScrollView) MaxScroll() int {
	return max(0, v.ContentHeight()-v.height)
}

// ScrollTo sets the scroll offset, clamped to the valid range.
func (v *ScrollView) ScrollTo(y int) {
	v.scrollY = clamp(y, 0, v.MaxScroll())
}

// ScrollBy adjusts the scroll offset by dy.
func (v *ScrollView) ScrollBy(dy int) {
	v.ScrollTo(v.scrollY + dy)
}

// ScrollToTop scrolls to the first row.
func (v *ScrollView) ScrollToTop() {
	v.ScrollTo(0)
}

// ScrollToBottom scrolls so the last row is at the bottom of the viewport.
func (v *ScrollView) ScrollToBottom() {
	v.ScrollTo(v.MaxScroll())
}

// --- Layout ---

// layout stacks items in one column starting at content y=0.
func (v *ScrollView) layout() {
	if !v.dirty {
		return
	}
	y := 0
	for _, it := range v.items {
		inner := max(v.width-2*it.padding, 1)
		it.rows = wrapText(it.text, inner)
		h := len(it.rows) + 2*it.padding
		it.rect = NewRect(0, y, v.width, h)
		y += h
	}
	v.contentHeight = y
	v.dirty = false
	v.scrollY = clamp(v.scrollY, 0, max(0, v.contentHeight-v.height))
	debug.Log("ScrollView.layout: %d items, content height %d", len(v.items), v.contentHeight)
}

// Measure runs one layout pass: every header measures itself in the view's
// space and reports. All reports are folded into the registry before any
// header recomputes its placement.
func (v *ScrollView) Measure() {
	v.layout()
	space := v.Space()
	measure := func() {
		for _, it := range v.items {
			if it.header != nil {
				it.header.Measure(space.FrameOf(it.rect))
			}
		}
	}
	if v.provider != nil {
		v.provider.Batch(measure)
		return
	}
	measure()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
