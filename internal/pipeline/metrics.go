package pipeline

import (
	"math"

	"multires-spline/internal/blend"
)

// BlendMetrics summarises how faithfully a composite keeps its sources away
// from the seam, and how abrupt the seam itself is.
type BlendMetrics struct {
	// LeftPSNR compares the leftmost quarter of the composite with the
	// aligned left input, in dB.
	LeftPSNR float64
	// RightPSNR does the same for the rightmost quarter.
	RightPSNR float64
	// SeamStep is the mean absolute difference between the two columns that
	// straddle the center line.
	SeamStep float64
}

// CalculateBlendMetrics evaluates a blend result. Inputs narrower than four
// columns yield zero PSNR values.
func CalculateBlendMetrics(result *blend.Result) BlendMetrics {
	var m BlendMetrics
	if result == nil || len(result.Left.Gaussian) == 0 || len(result.Right.Gaussian) == 0 {
		return m
	}

	composite := result.Composite
	quarter := composite.Width / 4
	if quarter > 0 {
		m.LeftPSNR = psnr(composite, result.Left.Gaussian[0], 0, quarter)
		m.RightPSNR = psnr(composite, result.Right.Gaussian[0], composite.Width-quarter, composite.Width)
	}

	if composite.Width >= 2 {
		half := composite.Width / 2
		a, b := composite.Column(half-1), composite.Column(half)
		var sum float64
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}
		if len(a) > 0 {
			m.SeamStep = sum / float64(len(a))
		}
	}
	return m
}

// psnr compares columns [from, to) of two same-shaped images on the 8-bit scale.
func psnr(a, b blend.Image, from, to int) float64 {
	var sse float64
	var n int
	for y := 0; y < a.Height; y++ {
		for x := from; x < to; x++ {
			for c := 0; c < a.Channels; c++ {
				d := math.Max(0, math.Min(255, a.At(y, x, c))) - b.At(y, x, c)
				sse += d * d
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	mse := sse / float64(n)
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}
