package blend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coords encodes each sample as y*100 + x.
func coords(shape Shape) Image {
	img := NewImage(shape)
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			for c := 0; c < shape.Channels; c++ {
				img.Set(y, x, c, float64(y*100+x))
			}
		}
	}
	return img
}

func TestAlign(t *testing.T) {
	t.Run("symmetric trim", func(tt *testing.T) {
		big := coords(Shape{Height: 10, Width: 9, Channels: 3})
		small := coords(Shape{Height: 7, Width: 6, Channels: 3})

		a, b, err := Align(big, small)
		require.NoError(tt, err)
		assert.Equal(tt, Shape{Height: 7, Width: 6, Channels: 3}, a.Shape())
		assert.Equal(tt, a.Shape(), b.Shape())

		// d = 3 on both axes: 2 off the top/left, 1 off the bottom/right.
		assert.Equal(tt, 202.0, a.At(0, 0, 0))
		assert.Equal(tt, 807.0, a.At(6, 5, 2))
		assert.Equal(tt, small, b)
	})
	t.Run("even difference", func(tt *testing.T) {
		a, b, err := Align(coords(Shape{Height: 4, Width: 4, Channels: 1}), coords(Shape{Height: 8, Width: 2, Channels: 1}))
		require.NoError(tt, err)
		assert.Equal(tt, Shape{Height: 4, Width: 2, Channels: 1}, a.Shape())
		assert.Equal(tt, 1.0, a.At(0, 0, 0))
		assert.Equal(tt, 200.0, b.At(0, 0, 0))
	})
	t.Run("order independent", func(tt *testing.T) {
		x := coords(Shape{Height: 11, Width: 5, Channels: 1})
		y := coords(Shape{Height: 6, Width: 12, Channels: 1})
		a1, b1, err := Align(x, y)
		require.NoError(tt, err)
		b2, a2, err := Align(y, x)
		require.NoError(tt, err)
		assert.Equal(tt, a1, a2)
		assert.Equal(tt, b1, b2)
	})
	t.Run("channel mismatch", func(tt *testing.T) {
		_, _, err := Align(NewImage(Shape{Height: 2, Width: 2, Channels: 3}), NewImage(Shape{Height: 2, Width: 2, Channels: 4}))
		assert.True(tt, errors.Is(err, ErrInvalidInput))
	})
}

func TestTrimOffsets(t *testing.T) {
	tests := []struct {
		size, want, low, high int
	}{
		{10, 7, 2, 1},
		{10, 6, 2, 2},
		{5, 5, 0, 0},
		{4, 9, 0, 0},
		{6, 5, 1, 0},
	}
	for _, tc := range tests {
		low, high := trimOffsets(tc.size, tc.want)
		assert.Equal(t, tc.low, low, "low %d->%d", tc.size, tc.want)
		assert.Equal(t, tc.high, high, "high %d->%d", tc.size, tc.want)
	}
}
