package blend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestKernelSums(t *testing.T) {
	assert.InDelta(t, 1.0, ReduceKernel.Sum(), 1e-12)
	assert.InDelta(t, 2.0, ExpandKernel.Sum(), 1e-12)
}

func TestBoundaryIndex(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		mode BoundaryMode
		want int
		ok   bool
	}{
		{"inside", 3, 5, BoundaryReflect, 3, true},
		{"reflect low 1", -1, 5, BoundaryReflect, 0, true},
		{"reflect low 2", -2, 5, BoundaryReflect, 1, true},
		{"reflect high 1", 5, 5, BoundaryReflect, 4, true},
		{"reflect high 2", 6, 5, BoundaryReflect, 3, true},
		{"reflect single", -2, 1, BoundaryReflect, 0, true},
		{"reflect narrow", 3, 2, BoundaryReflect, 0, true},
		{"zero low", -1, 5, BoundaryZero, 0, false},
		{"zero high", 5, 5, BoundaryZero, 0, false},
		{"zero inside", 2, 5, BoundaryZero, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			got, ok := boundaryIndex(tc.i, tc.n, tc.mode)
			assert.Equal(tt, tc.ok, ok)
			if ok {
				assert.Equal(tt, tc.want, got)
			}
		})
	}
}

func TestConvolve(t *testing.T) {
	t.Run("constant reflect", func(tt *testing.T) {
		img := solid(Shape{Height: 5, Width: 7, Channels: 3}, 42)
		got := Convolve(img, ReduceKernel, BoundaryReflect)
		if cmp.Equal(got.Pix, img.Pix, approx) != true {
			tt.Errorf("%v != %v", got.Pix, img.Pix)
		}
	})
	t.Run("impulse zero", func(tt *testing.T) {
		img := NewImage(Shape{Height: 5, Width: 5, Channels: 1})
		img.Set(2, 2, 0, 1)
		got := Convolve(img, ReduceKernel, BoundaryZero)
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				assert.InDelta(tt, ReduceKernel[y]*ReduceKernel[x], got.At(y, x, 0), 1e-12)
			}
		}
	})
	t.Run("zero boundary drops energy", func(tt *testing.T) {
		img := solid(Shape{Height: 1, Width: 3, Channels: 1}, 20)
		got := Convolve(img, ReduceKernel, BoundaryZero)
		// column 0 sees taps 8,5,1 of 20 on the row axis, and only the
		// center tap vertically.
		assert.InDelta(tt, 20*(8.0/20)*(14.0/20), got.At(0, 0, 0), 1e-9)
	})
	t.Run("input untouched", func(tt *testing.T) {
		img := noise(Shape{Height: 4, Width: 4, Channels: 2}, 1)
		before := img.Clone()
		Convolve(img, ExpandKernel, BoundaryZero)
		assert.Equal(tt, before, img)
	})
	t.Run("empty", func(tt *testing.T) {
		img := NewImage(Shape{Height: 0, Width: 0, Channels: 3})
		got := Convolve(img, ReduceKernel, BoundaryReflect)
		assert.Empty(tt, got.Pix)
	})
}
