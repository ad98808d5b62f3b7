package sticky

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameFromRect(t *testing.T) {
	f := FrameFromRect(NewRect(2, -3, 10, 4))

	assert.Equal(t, Frame{X: 2, Y: -3, Width: 10, Height: 4}, f)
	assert.Equal(t, -3.0, f.MinY())
	assert.Equal(t, 1.0, f.MaxY())
}

func TestFrame_Valid(t *testing.T) {
	type tc struct {
		frame    Frame
		expected bool
	}

	tests := map[string]tc{
		"zero":            {frame: Frame{}, expected: true},
		"scrolled past":   {frame: Frame{Y: -12.5, Width: 3, Height: 2}, expected: true},
		"negative height": {frame: Frame{Y: 1, Height: -1}, expected: false},
		"nan y":           {frame: Frame{Y: math.NaN(), Height: 1}, expected: false},
		"inf height":      {frame: Frame{Height: math.Inf(1)}, expected: false},
		"nan x":           {frame: Frame{X: math.NaN(), Height: 1}, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.frame.Valid())
		})
	}
}
