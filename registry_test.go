package sticky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrames_Merge(t *testing.T) {
	a, b, c := NewHeaderID(), NewHeaderID(), NewHeaderID()

	type tc struct {
		prev     Frames
		update   Frames
		expected Frames
	}

	tests := map[string]tc{
		"update wins for an existing key": {
			prev:     Frames{a: {Y: 1, Height: 2}, b: {Y: 5, Height: 2}},
			update:   Frames{a: {Y: -3, Height: 2}},
			expected: Frames{a: {Y: -3, Height: 2}, b: {Y: 5, Height: 2}},
		},
		"new key is added": {
			prev:     Frames{a: {Y: 1, Height: 2}},
			update:   Frames{c: {Y: 9, Height: 1}},
			expected: Frames{a: {Y: 1, Height: 2}, c: {Y: 9, Height: 1}},
		},
		"full-set update replaces every key": {
			prev:     Frames{a: {Y: 1}, b: {Y: 2}},
			update:   Frames{a: {Y: 10}, b: {Y: 20}},
			expected: Frames{a: {Y: 10}, b: {Y: 20}},
		},
		"empty update keeps everything": {
			prev:     Frames{a: {Y: 1}, b: {Y: 2}},
			update:   Frames{},
			expected: Frames{a: {Y: 1}, b: {Y: 2}},
		},
		"nil previous registry": {
			prev:     nil,
			update:   Frames{b: {Y: 4}},
			expected: Frames{b: {Y: 4}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.prev.Merge(tt.update)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFrames_MergeChangesOnlyUpdatedKey(t *testing.T) {
	ids := []HeaderID{NewHeaderID(), NewHeaderID(), NewHeaderID(), NewHeaderID()}
	prev := Frames{}
	for i, id := range ids {
		prev[id] = Frame{Y: float64(i * 10), Height: 3}
	}

	for _, k := range ids {
		got := prev.Merge(Frames{k: {Y: -1, Height: 7}})
		require.Len(t, got, len(prev))
		for _, id := range ids {
			if id == k {
				assert.Equal(t, Frame{Y: -1, Height: 7}, got[id])
				continue
			}
			assert.Equal(t, prev[id], got[id])
		}
	}
}

func TestFrames_MergeDoesNotMutateInputs(t *testing.T) {
	a, b := NewHeaderID(), NewHeaderID()
	prev := Frames{a: {Y: 1}}
	update := Frames{a: {Y: 2}, b: {Y: 3}}

	_ = prev.Merge(update)

	assert.Equal(t, Frames{a: {Y: 1}}, prev)
	assert.Equal(t, Frames{a: {Y: 2}, b: {Y: 3}}, update)
}

func TestFrames_Without(t *testing.T) {
	a, b, c := NewHeaderID(), NewHeaderID(), NewHeaderID()
	prev := Frames{a: {Y: 1}, b: {Y: 2}, c: {Y: 3}}

	got := prev.Without(b, NewHeaderID())

	assert.Equal(t, Frames{a: {Y: 1}, c: {Y: 3}}, got)
	assert.Len(t, prev, 3, "Without must not modify the receiver")
}

func TestRegistry_ReadView(t *testing.T) {
	a, b := NewHeaderID(), NewHeaderID()
	src := Frames{a: {Y: 1, Height: 1}, b: {Y: 2, Height: 1}}
	reg := NewRegistry(src)

	// The snapshot is isolated from later writes to the source mapping.
	src[a] = Frame{Y: 100}
	f, ok := reg.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, 1.0, f.Y)

	_, ok = reg.Lookup(NewHeaderID())
	assert.False(t, ok)
	assert.Equal(t, 2, reg.Len())

	copied := reg.Frames()
	copied[b] = Frame{Y: 42}
	f, _ = reg.Lookup(b)
	assert.Equal(t, 2.0, f.Y)
}

func TestRegistry_EachIsOrderedByID(t *testing.T) {
	frames := Frames{}
	for i := 0; i < 16; i++ {
		frames[NewHeaderID()] = Frame{Y: float64(i)}
	}
	reg := NewRegistry(frames)

	var seen []HeaderID
	reg.Each(func(id HeaderID, _ Frame) bool {
		seen = append(seen, id)
		return true
	})
	require.Len(t, seen, 16)
	for i := 1; i < len(seen); i++ {
		assert.Negative(t, seen[i-1].Compare(seen[i]))
	}

	count := 0
	reg.Each(func(HeaderID, Frame) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestRegistry_ZeroValue(t *testing.T) {
	var reg Registry
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, uint64(0), reg.Version())
	_, ok := reg.Lookup(NewHeaderID())
	assert.False(t, ok)
}
