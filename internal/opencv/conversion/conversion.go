package conversion

import (
	"fmt"

	"multires-spline/internal/blend"
	"multires-spline/internal/opencv/safe"
)

// MatToImage widens an 8-bit Mat into a blend.Image, keeping OpenCV's
// channel order.
func MatToImage(src *safe.Mat) (blend.Image, error) {
	if err := safe.ValidateMatForOperation(src, "Mat to image conversion"); err != nil {
		return blend.Image{}, err
	}
	if err := safe.ValidateMatType(src.Type(), "Mat to image conversion"); err != nil {
		return blend.Image{}, err
	}

	data, err := src.Bytes()
	if err != nil {
		return blend.Image{}, fmt.Errorf("Mat data access failed: %w", err)
	}

	img, err := blend.FromUint8(src.Rows(), src.Cols(), src.Channels(), data)
	if err != nil {
		return blend.Image{}, fmt.Errorf("Mat to image conversion failed: %w", err)
	}
	return img, nil
}

// ImageToMat clamps and quantizes img into a new 8-bit Mat.
func ImageToMat(img blend.Image, tag string) (*safe.Mat, error) {
	matType, err := safe.MatTypeForChannels(img.Channels, "image to Mat conversion")
	if err != nil {
		return nil, err
	}

	mat, err := safe.NewMatFromBytes(img.Height, img.Width, matType, img.Quantize(), tag)
	if err != nil {
		return nil, fmt.Errorf("destination Mat creation failed: %w", err)
	}
	return mat, nil
}
