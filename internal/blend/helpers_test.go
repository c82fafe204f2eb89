package blend

import (
	"math/rand"
)

func solid(shape Shape, value float64) Image {
	img := NewImage(shape)
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

func noise(shape Shape, seed int64) Image {
	r := rand.New(rand.NewSource(seed))
	img := NewImage(shape)
	for i := range img.Pix {
		img.Pix[i] = float64(r.Intn(256))
	}
	return img
}

// ramp sets every sample to its column index, for crop and splice checks.
func ramp(shape Shape) Image {
	img := NewImage(shape)
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			for c := 0; c < shape.Channels; c++ {
				img.Set(y, x, c, float64(x))
			}
		}
	}
	return img
}
