package pipeline

import (
	"context"

	"multires-spline/internal/blend"
)

// Codec reads and writes image files as blend.Image values with BGR(A)
// channel order.
type Codec interface {
	Decode(path string) (blend.Image, error)
	Encode(path string, img blend.Image, opts EncodeOptions) error
	Name() string
}

// EncodeOptions tunes lossy encoders.
type EncodeOptions struct {
	JPEGQuality int
}

// TimingTracker measures named operations.
type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
}

// ImageData is a decoded input together with where it came from.
type ImageData struct {
	Image  blend.Image
	Path   string
	Format string
	Codec  string
}

func (d *ImageData) Width() int    { return d.Image.Width }
func (d *ImageData) Height() int   { return d.Image.Height }
func (d *ImageData) Channels() int { return d.Image.Channels }
