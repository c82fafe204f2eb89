package blend

import "fmt"

// BoundaryMode selects how Convolve reads samples outside the image.
type BoundaryMode int

const (
	// BoundaryReflect mirrors about the edge: d c b a | a b c d | d c b a.
	BoundaryReflect BoundaryMode = iota
	// BoundaryZero treats every out-of-bounds sample as 0.
	BoundaryZero
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryReflect:
		return "reflect"
	case BoundaryZero:
		return "zero"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// Convolve correlates k along the row axis and then along the column axis.
// The result has the shape of img; img is not modified.
func Convolve(img Image, k Kernel, mode BoundaryMode) Image {
	vertical := correlate(img, k, mode, true)
	return correlate(vertical, k, mode, false)
}

// correlate runs one 1-D pass. When vertical is set the kernel slides down
// each column (axis 0), otherwise along each row (axis 1).
func correlate(img Image, k Kernel, mode BoundaryMode, vertical bool) Image {
	out := NewImage(img.Shape())
	n := img.Width
	if vertical {
		n = img.Height
	}
	if n == 0 {
		return out
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pos := x
			if vertical {
				pos = y
			}
			for c := 0; c < img.Channels; c++ {
				var acc float64
				for t := -Radius; t <= Radius; t++ {
					src, ok := boundaryIndex(pos+t, n, mode)
					if !ok {
						continue
					}
					if vertical {
						acc += k[t+Radius] * img.At(src, x, c)
					} else {
						acc += k[t+Radius] * img.At(y, src, c)
					}
				}
				out.Set(y, x, c, acc)
			}
		}
	}
	return out
}

// boundaryIndex maps i onto [0, n). ok is false when the sample is outside
// the image and mode is BoundaryZero.
func boundaryIndex(i, n int, mode BoundaryMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	if mode == BoundaryZero {
		return 0, false
	}

	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i, true
}
