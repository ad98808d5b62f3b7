package sticky

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Measure(t *testing.T) {
	id := NewHeaderID()
	var published []Frames
	r := NewReporter(id, func(f Frames) { published = append(published, f) })

	_, ok := r.Last()
	assert.False(t, ok)

	assert.True(t, r.Measure(Frame{Y: 4, Height: 1}), "first measurement publishes")
	assert.False(t, r.Measure(Frame{Y: 4, Height: 1}), "unchanged frame does not")
	assert.True(t, r.Measure(Frame{Y: 3, Height: 1}), "scroll change publishes")
	assert.True(t, r.Measure(Frame{Y: 3, Height: 2}), "size change publishes")
	assert.False(t, r.Measure(Frame{Y: math.NaN(), Height: 2}), "invalid frame is dropped")

	require.Len(t, published, 3)
	for _, f := range published {
		assert.Len(t, f, 1)
		_, ok := f[id]
		assert.True(t, ok, "reporter only writes its own key")
	}
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, Frame{Y: 3, Height: 2}, last)

	r.Reset()
	assert.True(t, r.Measure(Frame{Y: 3, Height: 2}), "reset forces a republish")
}

func TestReporter_ZeroFrameIsStillReported(t *testing.T) {
	calls := 0
	r := NewReporter(NewHeaderID(), func(Frames) { calls++ })

	assert.True(t, r.Measure(Frame{}))
	assert.Equal(t, 1, calls)
}

func TestSpace_FrameOf(t *testing.T) {
	type tc struct {
		scrollY int
		rect    Rect
		want    Frame
	}

	tests := map[string]tc{
		"unscrolled": {
			scrollY: 0,
			rect:    NewRect(0, 5, 40, 1),
			want:    Frame{X: 0, Y: 5, Width: 40, Height: 1},
		},
		"scrolled past goes negative": {
			scrollY: 8,
			rect:    NewRect(0, 5, 40, 3),
			want:    Frame{X: 0, Y: -3, Width: 40, Height: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSpace("list", 0, tt.scrollY)
			assert.Equal(t, tt.want, s.FrameOf(tt.rect))
			assert.Equal(t, "list", s.Name())
		})
	}

	assert.Equal(t, DefaultSpaceName, NewSpace("", 0, 0).Name())
}
