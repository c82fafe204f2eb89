package blend

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run("shape", func(tt *testing.T) {
		for _, s := range []Shape{{8, 8, 3}, {7, 9, 3}, {1, 1, 1}, {2, 3, 1}, {33, 16, 4}} {
			got := Reduce(NewImage(s)).Shape()
			expect := Shape{Height: (s.Height + 1) / 2, Width: (s.Width + 1) / 2, Channels: s.Channels}
			assert.Equal(tt, expect, got, "reduce %s", s)
		}
	})
	t.Run("constant", func(tt *testing.T) {
		img := solid(Shape{Height: 9, Width: 6, Channels: 3}, 128)
		got := Reduce(img)
		expect := solid(got.Shape(), 128)
		if cmp.Equal(got.Pix, expect.Pix, approx) != true {
			tt.Errorf("%v != %v", got.Pix, expect.Pix)
		}
	})
	t.Run("keeps even samples", func(tt *testing.T) {
		img := noise(Shape{Height: 6, Width: 6, Channels: 1}, 7)
		lowpass := Convolve(img, ReduceKernel, BoundaryReflect)
		got := Reduce(img)
		for y := 0; y < got.Height; y++ {
			for x := 0; x < got.Width; x++ {
				assert.Equal(tt, lowpass.At(2*y, 2*x, 0), got.At(y, x, 0))
			}
		}
	})
}

func TestExpand(t *testing.T) {
	t.Run("shape law", func(tt *testing.T) {
		for _, s := range []Shape{{8, 8, 3}, {9, 8, 3}, {8, 9, 3}, {7, 7, 1}, {1, 1, 3}, {2, 5, 2}} {
			tt.Run(s.String(), func(ttt *testing.T) {
				got, err := Expand(Reduce(noise(s, 3)), s)
				require.NoError(ttt, err)
				assert.Equal(ttt, s, got.Shape())
			})
		}
	})
	t.Run("interior of constant", func(tt *testing.T) {
		// Away from the border the sum-to-2 kernel restores the level of a
		// zero-interleaved constant image.
		coarse := solid(Shape{Height: 8, Width: 8, Channels: 1}, 50)
		got, err := Expand(coarse, Shape{Height: 16, Width: 16, Channels: 1})
		require.NoError(tt, err)
		for y := 4; y < 12; y++ {
			for x := 4; x < 12; x++ {
				assert.InDelta(tt, 50, got.At(y, x, 0), 1e-9, fmt.Sprintf("(%d,%d)", y, x))
			}
		}
	})
	t.Run("channel mismatch", func(tt *testing.T) {
		_, err := Expand(NewImage(Shape{Height: 2, Width: 2, Channels: 1}), Shape{Height: 4, Width: 4, Channels: 3})
		assert.True(tt, errors.Is(err, ErrInvalidInput))
	})
	t.Run("size mismatch", func(tt *testing.T) {
		_, err := Expand(NewImage(Shape{Height: 3, Width: 2, Channels: 1}), Shape{Height: 4, Width: 4, Channels: 1})
		assert.True(tt, errors.Is(err, ErrInvalidInput))
	})
}
