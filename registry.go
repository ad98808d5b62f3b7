package sticky

import "sort"

// Frames maps each header to the frame it most recently reported.
type Frames map[HeaderID]Frame

// Merge folds update into f and returns the result as a new mapping.
// Keys present in update replace the old frame; keys only in f are kept.
// Neither input is modified, so a partial batch never drops unrelated
// headers.
func (f Frames) Merge(update Frames) Frames {
	out := make(Frames, len(f)+len(update))
	for id, frame := range f {
		out[id] = frame
	}
	for id, frame := range update {
		out[id] = frame
	}
	return out
}

// Without returns a copy of f with the given ids removed.
func (f Frames) Without(ids ...HeaderID) Frames {
	out := make(Frames, len(f))
	for id, frame := range f {
		out[id] = frame
	}
	for _, id := range ids {
		delete(out, id)
	}
	return out
}

// Registry is a read-only snapshot of every frame known to a Provider.
// The zero value is an empty registry.
type Registry struct {
	frames  Frames
	version uint64
}

// NewRegistry wraps a copy of frames as a snapshot.
func NewRegistry(frames Frames) Registry {
	return Registry{frames: Frames(nil).Merge(frames)}
}

// Lookup returns the frame reported for id.
func (r Registry) Lookup(id HeaderID) (Frame, bool) {
	f, ok := r.frames[id]
	return f, ok
}

// Len returns the number of registered headers.
func (r Registry) Len() int {
	return len(r.frames)
}

// Version increases every time the owning Provider changes the registry.
func (r Registry) Version() uint64 {
	return r.version
}

// Each calls fn for every entry ordered by id, stopping early if fn
// returns false.
func (r Registry) Each(fn func(HeaderID, Frame) bool) {
	ids := make([]HeaderID, 0, len(r.frames))
	for id := range r.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	for _, id := range ids {
		if !fn(id, r.frames[id]) {
			return
		}
	}
}

// Frames returns a copy of the underlying mapping.
func (r Registry) Frames() Frames {
	return Frames(nil).Merge(r.frames)
}
