package blend

import (
	"fmt"
	"math"
)

// Shape describes the extent of an Image.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Len returns the number of samples an image of this shape holds.
func (s Shape) Len() int {
	return s.Height * s.Width * s.Channels
}

// Image is a row-major, channel-interleaved grid of float64 samples.
// Samples may be negative; band-pass pyramid levels routinely are.
type Image struct {
	Height   int
	Width    int
	Channels int
	Pix      []float64
}

// NewImage allocates a zero-filled image.
func NewImage(shape Shape) Image {
	return Image{
		Height:   shape.Height,
		Width:    shape.Width,
		Channels: shape.Channels,
		Pix:      make([]float64, shape.Len()),
	}
}

// FromUint8 widens an 8-bit interleaved buffer into a working Image.
func FromUint8(height, width, channels int, data []uint8) (Image, error) {
	shape := Shape{Height: height, Width: width, Channels: channels}
	if height < 0 || width < 0 || channels <= 0 {
		return Image{}, invalidInput("bad shape %s", shape)
	}
	if len(data) != shape.Len() {
		return Image{}, invalidInput("buffer holds %d samples, shape %s needs %d", len(data), shape, shape.Len())
	}

	img := NewImage(shape)
	for i, v := range data {
		img.Pix[i] = float64(v)
	}
	return img, nil
}

func (img Image) Shape() Shape {
	return Shape{Height: img.Height, Width: img.Width, Channels: img.Channels}
}

func (img Image) offset(y, x, c int) int {
	return (y*img.Width+x)*img.Channels + c
}

func (img Image) At(y, x, c int) float64 {
	return img.Pix[img.offset(y, x, c)]
}

func (img Image) Set(y, x, c int, v float64) {
	img.Pix[img.offset(y, x, c)] = v
}

func (img Image) Clone() Image {
	out := NewImage(img.Shape())
	copy(out.Pix, img.Pix)
	return out
}

// Column returns the samples of column x, row by row.
func (img Image) Column(x int) []float64 {
	out := make([]float64, 0, img.Height*img.Channels)
	for y := 0; y < img.Height; y++ {
		start := img.offset(y, x, 0)
		out = append(out, img.Pix[start:start+img.Channels]...)
	}
	return out
}

// Quantize clamps every sample to [0, 255] and rounds to the nearest integer.
func (img Image) Quantize() []uint8 {
	out := make([]uint8, len(img.Pix))
	for i, v := range img.Pix {
		out[i] = clampUint8(v)
	}
	return out
}

func clampUint8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// Add returns a + b.
func Add(a, b Image) (Image, error) {
	return combine(a, b, "add", func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func Sub(a, b Image) (Image, error) {
	return combine(a, b, "sub", func(x, y float64) float64 { return x - y })
}

func combine(a, b Image, op string, fn func(float64, float64) float64) (Image, error) {
	if a.Shape() != b.Shape() {
		return Image{}, invalidInput("%s: shape %s does not match %s", op, a.Shape(), b.Shape())
	}

	out := NewImage(a.Shape())
	for i := range out.Pix {
		out.Pix[i] = fn(a.Pix[i], b.Pix[i])
	}
	return out, nil
}
