package sticky

// Priority is the paint order a header asks for.
type Priority int

const (
	// PriorityNormal paints with the surrounding content.
	PriorityNormal Priority = iota
	// PriorityFront paints after all normal content so a pinned header
	// overlaps the rows scrolling beneath it.
	PriorityFront
)

func (p Priority) String() string {
	if p == PriorityFront {
		return "front"
	}
	return "normal"
}

// Placement is the result of Compute for one header.
type Placement struct {
	Sticking bool
	Offset   float64
	Priority Priority
}

// Compute decides whether the header self, whose own frame is own, sticks
// to the top of the viewport and how far it must be shifted down.
//
// A header sticks once its top edge has scrolled above the viewport. It is
// pinned by shifting it down by exactly that distance, minus however far the
// next header has already moved into its footprint. The next header is the
// registry entry, other than self, whose top edge lies strictly between
// own.Y and own.Height. If several qualify, the one closest to the top wins,
// then the smallest id.
//
// Compute is pure; equal inputs always produce equal placements.
func Compute(self HeaderID, own Frame, reg Registry) Placement {
	return ComputeFrames(self, own, reg.frames)
}

// ComputeFrames is Compute over a raw mapping.
func ComputeFrames(self HeaderID, own Frame, frames Frames) Placement {
	if !own.Valid() || own.Y >= 0 {
		return Placement{}
	}

	offset := -own.Y
	if next, ok := incoming(self, own, frames); ok {
		offset -= own.Height - next.Y
	}

	return Placement{
		Sticking: true,
		Offset:   offset,
		Priority: PriorityFront,
	}
}

// incoming finds the header pushing into own's footprint.
func incoming(self HeaderID, own Frame, frames Frames) (Frame, bool) {
	var (
		best   Frame
		bestID HeaderID
		found  bool
	)
	for id, f := range frames {
		if id == self || !f.Valid() {
			continue
		}
		if f.Y <= own.Y || f.Y >= own.Height {
			continue
		}
		if !found || f.Y < best.Y || (f.Y == best.Y && id.Compare(bestID) < 0) {
			best, bestID, found = f, id, true
		}
	}
	return best, found
}
