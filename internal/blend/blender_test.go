package blend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendDirectSplice(t *testing.T) {
	shape := Shape{Height: 8, Width: 8, Channels: 3}
	b := NewBlender(Options{Levels: 0}, nil)

	result, err := b.Blend(context.Background(), solid(shape, 10), solid(shape, 200))
	require.NoError(t, err)
	require.Len(t, result.Spliced, 1)

	out := result.Quantize()
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			want := uint8(10)
			if x >= 4 {
				want = 200
			}
			for c := 0; c < shape.Channels; c++ {
				got := out[(y*shape.Width+x)*shape.Channels+c]
				if got != want {
					t.Fatalf("(%d,%d,%d) = %d, want %d", y, x, c, got, want)
				}
			}
		}
	}
}

func TestBlendIdenticalEvenLevels(t *testing.T) {
	// 16 -> 8 -> 4 -> 2: every level has an even width, so no seam column
	// is doubled and splicing an image with itself changes nothing.
	img := noise(Shape{Height: 16, Width: 16, Channels: 3}, 21)
	b := NewBlender(Options{Levels: 3}, nil)

	result, err := b.Blend(context.Background(), img, img.Clone())
	require.NoError(t, err)
	if cmp.Equal(result.Composite.Pix, img.Pix, approx) != true {
		t.Errorf("composite differs from input")
	}
}

func TestBlendAlignsInputs(t *testing.T) {
	b := NewBlender(Options{Levels: 2}, nil)
	result, err := b.Blend(context.Background(),
		noise(Shape{Height: 20, Width: 30, Channels: 3}, 1),
		noise(Shape{Height: 25, Width: 17, Channels: 3}, 2))
	require.NoError(t, err)

	assert.Equal(t, Shape{Height: 20, Width: 17, Channels: 3}, result.Composite.Shape())
	assert.Len(t, result.Left.Gaussian, 3)
	assert.Len(t, result.Right.Laplacian, 3)
	for _, stage := range []string{"align", "decompose", "splice", "collapse"} {
		assert.Contains(t, result.Timings, stage)
	}
}

func TestBlendSwapIsComplementary(t *testing.T) {
	// With even widths at every level the left and right masks partition
	// each band, so blend(a, b) + blend(b, a) reconstructs a + b exactly.
	shape := Shape{Height: 32, Width: 32, Channels: 1}
	b := NewBlender(Options{Levels: 4}, nil)
	lo, hi := solid(shape, 40), solid(shape, 220)

	ab, err := b.Blend(context.Background(), lo, hi)
	require.NoError(t, err)
	ba, err := b.Blend(context.Background(), hi, lo)
	require.NoError(t, err)

	sum, err := Add(ab.Composite, ba.Composite)
	require.NoError(t, err)
	if cmp.Equal(sum.Pix, solid(shape, 260).Pix, approx) != true {
		t.Errorf("swapped blends do not complement each other")
	}
}

func TestBlendErrors(t *testing.T) {
	t.Run("channel mismatch", func(tt *testing.T) {
		b := NewBlender(DefaultOptions(), nil)
		_, err := b.Blend(context.Background(),
			NewImage(Shape{Height: 4, Width: 4, Channels: 3}),
			NewImage(Shape{Height: 4, Width: 4, Channels: 1}))
		assert.True(tt, errors.Is(err, ErrInvalidInput))
	})
	t.Run("too deep", func(tt *testing.T) {
		b := NewBlender(Options{Levels: 7}, nil)
		shape := Shape{Height: 64, Width: 200, Channels: 3}
		_, err := b.Blend(context.Background(), NewImage(shape), NewImage(shape))
		assert.True(tt, errors.Is(err, ErrDimensionUnderflow))
	})
	t.Run("canceled", func(tt *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		b := NewBlender(Options{Levels: 1}, nil)
		shape := Shape{Height: 4, Width: 4, Channels: 3}
		_, err := b.Blend(ctx, NewImage(shape), NewImage(shape))
		assert.ErrorIs(tt, err, context.Canceled)
	})
}
