package blend

// Align crops a and b to their common height and width. Each image loses
// the same amount from both edges of an axis; an odd excess row or column
// comes off the top or left.
func Align(a, b Image) (Image, Image, error) {
	if a.Channels != b.Channels {
		return Image{}, Image{}, invalidInput("align: %d channels vs %d", a.Channels, b.Channels)
	}

	height := min(a.Height, b.Height)
	width := min(a.Width, b.Width)
	return trim(a, height, width), trim(b, height, width), nil
}

// trimOffsets returns how much to drop from the low and high edges to shrink
// size down to want.
func trimOffsets(size, want int) (low, high int) {
	d := max(size-want, 0)
	return d/2 + d%2, d / 2
}

func trim(img Image, height, width int) Image {
	top, _ := trimOffsets(img.Height, height)
	left, _ := trimOffsets(img.Width, width)
	return Crop(img, top, left, height, width)
}

// Crop copies the height x width window whose top-left corner is (top, left).
// The window must lie inside img.
func Crop(img Image, top, left, height, width int) Image {
	out := NewImage(Shape{Height: height, Width: width, Channels: img.Channels})
	rowLen := width * img.Channels
	for y := 0; y < height; y++ {
		src := img.offset(top+y, left, 0)
		dst := out.offset(y, 0, 0)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}
