package sticky

import (
	"fmt"

	"github.com/grindlemire/go-sticky/internal/debug"
)

// Header is the sticky behavior attached to one content item. It reports
// the item's frame through a Reporter, listens to the provider's registry,
// and keeps the item's current Placement.
//
// A Header built without a Source never sticks and emits a diagnostic each
// time it would have.
type Header struct {
	id       HeaderID
	source   Source
	reporter *Reporter

	valid     bool
	placement Placement

	diagnostics func(string)
	metrics     *Metrics
	onPlacement func(Placement)
	unsubscribe Unsubscribe
	closed      bool
}

// HeaderOption configures a Header.
type HeaderOption func(*Header)

// WithHeaderDiagnostics sends missing-provider diagnostics to fn instead of
// the debug log.
func WithHeaderDiagnostics(fn func(string)) HeaderOption {
	return func(h *Header) {
		h.diagnostics = fn
	}
}

// WithHeaderMetrics counts missing-provider diagnostics on m.
func WithHeaderMetrics(m *Metrics) HeaderOption {
	return func(h *Header) {
		h.metrics = m
	}
}

// WithOnPlacement calls fn whenever the header's placement changes.
func WithOnPlacement(fn func(Placement)) HeaderOption {
	return func(h *Header) {
		h.onPlacement = fn
	}
}

// NewHeader creates the sticky behavior for the header identified by id.
// source may be nil when the enclosing view has stickiness disabled.
func NewHeader(id HeaderID, source Source, opts ...HeaderOption) *Header {
	h := &Header{
		id:     id,
		source: source,
		diagnostics: func(msg string) {
			debug.Log("%s", msg)
		},
	}
	for _, opt := range opts {
		opt(h)
	}

	var publish func(Frames)
	if source != nil {
		publish = source.Report
		h.unsubscribe = source.Subscribe(h.recompute)
	}
	h.reporter = NewReporter(id, publish)
	return h
}

// ID returns the header's identity.
func (h *Header) ID() HeaderID {
	return h.id
}

// Measure records the header's frame for this layout pass. With a provider
// the new placement arrives through the registry broadcast; without one it
// is computed immediately.
func (h *Header) Measure(f Frame) {
	if h.closed {
		return
	}
	if !f.Valid() {
		debug.Log("Header(%s).Measure: dropping invalid frame %s", h.id.short(), f)
		h.invalidate()
		return
	}

	h.valid = true
	h.reporter.Measure(f)
	if h.source == nil {
		h.recompute(Registry{})
	}
}

// invalidate un-sticks the header and withdraws its frame so it no longer
// pushes other headers. The next valid reading publishes again.
func (h *Header) invalidate() {
	wasValid := h.valid
	h.valid = false
	h.reporter.Reset()
	if wasValid && h.source != nil {
		h.source.Forget(h.id)
	}
	h.setPlacement(Placement{})
}

// Frame returns the last valid frame measured for this header.
func (h *Header) Frame() (Frame, bool) {
	return h.reporter.Last()
}

// Placement returns the header's current placement.
func (h *Header) Placement() Placement {
	return h.placement
}

// Refresh recomputes the placement from the provider's current registry.
func (h *Header) Refresh() Placement {
	var reg Registry
	if h.source != nil {
		reg = h.source.Registry()
	}
	h.recompute(reg)
	return h.placement
}

// Close detaches the header and removes its frame from the registry.
func (h *Header) Close() {
	if h.closed {
		return
	}
	h.closed = true
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
	if h.source != nil {
		h.source.Forget(h.id)
	}
	h.setPlacement(Placement{})
}

func (h *Header) recompute(reg Registry) {
	if h.closed {
		return
	}
	own, ok := h.reporter.Last()
	if !ok || !h.valid {
		h.setPlacement(Placement{})
		return
	}

	if h.source == nil {
		if own.Y < 0 {
			h.metrics.observeMissingProvider()
			if h.diagnostics != nil {
				h.diagnostics(fmt.Sprintf("sticky: header %s used without a sticky provider", h.id.short()))
			}
		}
		h.setPlacement(Placement{})
		return
	}

	h.setPlacement(Compute(h.id, own, reg))
}

func (h *Header) setPlacement(p Placement) {
	if p == h.placement {
		return
	}
	h.placement = p
	if h.onPlacement != nil {
		h.onPlacement(p)
	}
}
