// Package codec reads and writes image files through OpenCV.
package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"multires-spline/internal/blend"
	"multires-spline/internal/opencv/conversion"
	"multires-spline/internal/opencv/safe"
	"multires-spline/internal/pipeline"
)

// Codec implements pipeline.Codec with gocv.IMRead and gocv.IMWriteWithParams.
type Codec struct{}

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Name() string {
	return "opencv"
}

// Decode loads path as a 3-channel BGR image.
func (c *Codec) Decode(path string) (blend.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return blend.Image{}, fmt.Errorf("failed to open image: %w", err)
	}

	mat, err := safe.Adopt(gocv.IMRead(path, gocv.IMReadColor), "decoded:"+filepath.Base(path))
	if err != nil {
		return blend.Image{}, fmt.Errorf("failed to decode image with OpenCV: %w", err)
	}
	defer mat.Close()

	return conversion.MatToImage(mat)
}

// Encode writes img to path. The format is taken from the file extension.
func (c *Codec) Encode(path string, img blend.Image, opts pipeline.EncodeOptions) error {
	mat, err := conversion.ImageToMat(img, "encoded:"+filepath.Base(path))
	if err != nil {
		return err
	}
	defer mat.Close()

	var params []int
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		params = []int{int(gocv.IMWriteJpegQuality), opts.JPEGQuality}
	case ".png":
		params = []int{int(gocv.IMWritePngCompression), 3}
	}

	if ok := gocv.IMWriteWithParams(path, mat.GetMat(), params); !ok {
		return fmt.Errorf("failed to encode image with OpenCV: %s", path)
	}
	return nil
}
