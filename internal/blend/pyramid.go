package blend

import "math/bits"

// DefaultLevels is the number of Reduce steps applied when none is configured.
const DefaultLevels = 7

// Pyramid is an ordered list of images, finest first.
type Pyramid []Image

// Shapes lists the shape of every level.
func (p Pyramid) Shapes() []Shape {
	shapes := make([]Shape, len(p))
	for i, level := range p {
		shapes[i] = level.Shape()
	}
	return shapes
}

// Levels returns the number of Reduce steps separating the first and last level.
func (p Pyramid) Levels() int {
	return len(p) - 1
}

// MaxLevels returns the deepest pyramid GaussianPyramid accepts for an
// image of the given size, or -1 when the image is empty.
func MaxLevels(height, width int) int {
	side := min(height, width)
	if side <= 0 {
		return -1
	}
	return bits.Len(uint(side)) - 1
}

func checkDepth(img Image, levels int) error {
	if levels < 0 {
		return dimensionUnderflow("negative depth %d", levels)
	}
	if limit := MaxLevels(img.Height, img.Width); levels > limit {
		return dimensionUnderflow("depth %d needs a side of at least %d, image is %s (max depth %d)",
			levels, 1<<levels, img.Shape(), limit)
	}
	return nil
}

// GaussianPyramid returns levels+1 images: img itself followed by levels
// successive Reduce steps. The smaller side of img must be at least 2^levels.
func GaussianPyramid(img Image, levels int) (Pyramid, error) {
	if err := checkDepth(img, levels); err != nil {
		return nil, err
	}

	pyr := make(Pyramid, 0, levels+1)
	pyr = append(pyr, img)
	for i := 0; i < levels; i++ {
		pyr = append(pyr, Reduce(pyr[i]))
	}
	return pyr, nil
}

// LaplacianPyramid turns a Gaussian pyramid into band-pass levels. Level i
// holds G[i] - Expand(G[i+1]); the last level is a copy of the coarsest
// Gaussian level.
func LaplacianPyramid(gauss Pyramid) (Pyramid, error) {
	if len(gauss) == 0 {
		return nil, invalidInput("laplacian: empty gaussian pyramid")
	}

	last := len(gauss) - 1
	pyr := make(Pyramid, len(gauss))
	for i := 0; i < last; i++ {
		expanded, err := Expand(gauss[i+1], gauss[i].Shape())
		if err != nil {
			return nil, err
		}
		if pyr[i], err = Sub(gauss[i], expanded); err != nil {
			return nil, err
		}
	}
	pyr[last] = gauss[last].Clone()
	return pyr, nil
}

// Collapse sums a Laplacian pyramid back into a full resolution image,
// starting from the coarsest level.
func Collapse(lap Pyramid) (Image, error) {
	if len(lap) == 0 {
		return Image{}, invalidInput("collapse: empty pyramid")
	}

	partial := lap[len(lap)-1].Clone()
	for i := len(lap) - 2; i >= 0; i-- {
		expanded, err := Expand(partial, lap[i].Shape())
		if err != nil {
			return Image{}, err
		}
		if partial, err = Add(expanded, lap[i]); err != nil {
			return Image{}, err
		}
	}
	return partial, nil
}
