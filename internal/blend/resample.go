package blend

// halve returns ceil(n/2), the number of even indices in [0, n).
func halve(n int) int {
	return (n + 1) / 2
}

// Reduce low-passes img and keeps every second row and column starting at 0.
// Each spatial dimension becomes ceil(dim/2).
func Reduce(img Image) Image {
	lowpass := Convolve(img, ReduceKernel, BoundaryReflect)

	out := NewImage(Shape{Height: halve(img.Height), Width: halve(img.Width), Channels: img.Channels})
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			src := lowpass.offset(2*y, 2*x, 0)
			dst := out.offset(y, x, 0)
			copy(out.Pix[dst:dst+out.Channels], lowpass.Pix[src:src+out.Channels])
		}
	}
	return out
}

// Expand interpolates img up to target. The pixels of img land on the even
// rows and columns of a zero buffer shaped like target, which is then
// filtered with ExpandKernel and zero boundaries.
//
// The target shape is explicit because both 2n and 2n-1 reduce to n.
func Expand(img Image, target Shape) (Image, error) {
	if img.Channels != target.Channels {
		return Image{}, invalidInput("expand: %d channels into target %s", img.Channels, target)
	}
	if img.Height != halve(target.Height) || img.Width != halve(target.Width) {
		return Image{}, invalidInput("expand: %s cannot be interleaved into %s", img.Shape(), target)
	}

	up := NewImage(target)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			src := img.offset(y, x, 0)
			dst := up.offset(2*y, 2*x, 0)
			copy(up.Pix[dst:dst+up.Channels], img.Pix[src:src+img.Channels])
		}
	}
	return Convolve(up, ExpandKernel, BoundaryZero), nil
}
