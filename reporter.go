package sticky

// DefaultSpaceName is the coordinate space name used when a ScrollView is
// not given one.
const DefaultSpaceName = "container"

// Space is a scroll view's coordinate space at one scroll position.
// Every frame that takes part in stickiness must be measured through the
// same Space, otherwise offsets are computed against mismatched origins.
type Space struct {
	name    string
	scrollX int
	scrollY int
}

// NewSpace returns the named space of a viewport scrolled to (scrollX, scrollY).
func NewSpace(name string, scrollX, scrollY int) Space {
	if name == "" {
		name = DefaultSpaceName
	}
	return Space{name: name, scrollX: scrollX, scrollY: scrollY}
}

// Name returns the space's name.
func (s Space) Name() string {
	return s.name
}

// FrameOf converts a rect in content space (items stacked from y=0) into a
// frame relative to the top-left of the viewport.
func (s Space) FrameOf(r Rect) Frame {
	return FrameFromRect(r.Translate(-s.scrollX, -s.scrollY))
}

// Reporter publishes one header's frame toward a Provider. It is the only
// write path for that header's registry entry and never reads other
// headers' frames.
type Reporter struct {
	id       HeaderID
	publish  func(Frames)
	last     Frame
	measured bool
}

// NewReporter creates a reporter for id. publish receives single-entry
// updates; a nil publish only records frames locally.
func NewReporter(id HeaderID, publish func(Frames)) *Reporter {
	return &Reporter{id: id, publish: publish}
}

// ID returns the header id this reporter writes for.
func (r *Reporter) ID() HeaderID {
	return r.id
}

// Measure records f as the header's current frame. It publishes on the
// first valid measurement and on every change after that, and returns
// whether it published. Invalid frames are dropped.
func (r *Reporter) Measure(f Frame) bool {
	if !f.Valid() {
		return false
	}
	if r.measured && r.last == f {
		return false
	}
	r.last = f
	r.measured = true
	if r.publish != nil {
		r.publish(Frames{r.id: f})
	}
	return true
}

// Last returns the most recently recorded frame.
func (r *Reporter) Last() (Frame, bool) {
	return r.last, r.measured
}

// Reset forgets the recorded frame so the next Measure republishes.
func (r *Reporter) Reset() {
	r.last = Frame{}
	r.measured = false
}
