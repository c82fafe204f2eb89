package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"multires-spline/internal/blend"
	"multires-spline/internal/raster"
)

// StdCodec decodes through image.Decode with the golang.org/x/image formats
// registered, and encodes PNG, JPEG, BMP and TIFF without cgo.
type StdCodec struct{}

func NewStdCodec() *StdCodec {
	return &StdCodec{}
}

func (c *StdCodec) Name() string {
	return "stdlib"
}

func (c *StdCodec) Decode(path string) (blend.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return blend.Image{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return blend.Image{}, fmt.Errorf("failed to decode image with standard library: %w", err)
	}
	return raster.FromImage(img), nil
}

func (c *StdCodec) Encode(path string, img blend.Image, opts EncodeOptions) (err error) {
	out, err := raster.ToImage(img)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format := FormatFromPath(path); format {
	case "jpeg":
		return jpeg.Encode(f, out, &jpeg.Options{Quality: opts.JPEGQuality})
	case "bmp":
		return bmp.Encode(f, out)
	case "tiff":
		return tiff.Encode(f, out, &tiff.Options{Compression: tiff.Deflate})
	case "png":
		return png.Encode(f, out)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
