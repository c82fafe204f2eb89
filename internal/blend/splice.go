package blend

import "github.com/pkg/errors"

// SpliceLevel joins the left half of left with the right half of right.
//
// For an odd width w with half = w/2, columns [0, half) come from left,
// columns (half, w) from right, and column half holds left+right. The seam
// column is a sum rather than an average: averaging washes the composite
// out and the reason has not been pinned down.
// For an even width the halves abut with no shared column.
func SpliceLevel(left, right Image) (Image, error) {
	if left.Shape() != right.Shape() {
		return Image{}, invalidInput("splice: shape %s does not match %s", left.Shape(), right.Shape())
	}

	out := NewImage(left.Shape())
	w := left.Width
	half := w / 2
	ch := left.Channels

	for y := 0; y < left.Height; y++ {
		row := left.offset(y, 0, 0)
		copy(out.Pix[row:row+half*ch], left.Pix[row:row+half*ch])

		rstart := left.offset(y, w-half, 0)
		rend := row + w*ch
		copy(out.Pix[rstart:rend], right.Pix[rstart:rend])

		if w%2 == 1 {
			for c := 0; c < ch; c++ {
				out.Set(y, half, c, left.At(y, half, c)+right.At(y, half, c))
			}
		}
	}
	return out, nil
}

// Splice joins two pyramids level by level.
func Splice(left, right Pyramid) (Pyramid, error) {
	if len(left) != len(right) {
		return nil, invalidInput("splice: %d levels vs %d", len(left), len(right))
	}

	out := make(Pyramid, len(left))
	for i := range left {
		level, err := SpliceLevel(left[i], right[i])
		if err != nil {
			return nil, errors.Wrapf(err, "splice level %d", i)
		}
		out[i] = level
	}
	return out, nil
}
