// Package raster bridges blend.Image and the standard image.Image types.
//
// Three and four channel images are kept in OpenCV's BGR(A) sample order so
// that buffers decoded by gocv and by the standard library are interchangeable.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"multires-spline/internal/blend"
)

// FromImage converts img into a 3-channel BGR blend.Image.
func FromImage(img image.Image) blend.Image {
	bounds := img.Bounds()
	out := blend.NewImage(blend.Shape{Height: bounds.Dy(), Width: bounds.Dx(), Channels: 3})

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			out.Set(y, x, 0, float64(c.B))
			out.Set(y, x, 1, float64(c.G))
			out.Set(y, x, 2, float64(c.R))
		}
	}
	return out
}

// ToImage quantizes img into an image.Image. One channel becomes
// *image.Gray, three (BGR) and four (BGRA) become *image.NRGBA.
func ToImage(img blend.Image) (image.Image, error) {
	samples := img.Quantize()
	rect := image.Rect(0, 0, img.Width, img.Height)

	switch img.Channels {
	case 1:
		gray := image.NewGray(rect)
		for y := 0; y < img.Height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+img.Width], samples[y*img.Width:(y+1)*img.Width])
		}
		return gray, nil
	case 3, 4:
		out := image.NewNRGBA(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				i := (y*img.Width + x) * img.Channels
				a := uint8(255)
				if img.Channels == 4 {
					a = samples[i+3]
				}
				out.SetNRGBA(x, y, color.NRGBA{R: samples[i+2], G: samples[i+1], B: samples[i], A: a})
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", img.Channels)
	}
}

// BandPassOffset is added to band-pass levels before display so that zero
// maps to mid gray.
const BandPassOffset = 128

// Visualize prepares a pyramid level for display. Band-pass levels are
// shifted by BandPassOffset; low-pass levels are shown as-is.
func Visualize(level blend.Image, bandPass bool) blend.Image {
	if !bandPass {
		return level
	}
	out := level.Clone()
	for i := range out.Pix {
		out.Pix[i] += BandPassOffset
	}
	return out
}
