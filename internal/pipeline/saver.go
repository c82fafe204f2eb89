package pipeline

import (
	"errors"
	"fmt"

	"multires-spline/internal/blend"
	"multires-spline/internal/logger"
)

// Saver encodes images, trying each codec in order until one succeeds.
type Saver struct {
	codecs        []Codec
	options       EncodeOptions
	logger        logger.Logger
	timingTracker TimingTracker
}

func NewSaver(codecs []Codec, opts EncodeOptions, log logger.Logger, tracker TimingTracker) *Saver {
	return &Saver{
		codecs:        codecs,
		options:       opts,
		logger:        log,
		timingTracker: tracker,
	}
}

// SaveImage writes img to path. The format follows the extension of path.
func (s *Saver) SaveImage(path string, img blend.Image) error {
	ctx := s.timingTracker.StartTiming("save_image")
	defer s.timingTracker.EndTiming(ctx)

	format := FormatFromPath(path)
	s.logger.Debug("ImageSaver", "saving image", map[string]interface{}{
		"path":   path,
		"format": format,
		"width":  img.Width,
		"height": img.Height,
	})

	var errs []error
	for _, codec := range s.codecs {
		if err := codec.Encode(path, img, s.options); err != nil {
			s.logger.Warning("ImageSaver", "encoder failed", map[string]interface{}{
				"codec": codec.Name(),
				"error": err.Error(),
			})
			errs = append(errs, fmt.Errorf("%s: %w", codec.Name(), err))
			continue
		}

		s.logger.Info("ImageSaver", "image saved", map[string]interface{}{
			"path":   path,
			"format": format,
			"codec":  codec.Name(),
		})
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("no encoder configured")
	}
	err := fmt.Errorf("failed to save %s: %w", path, errors.Join(errs...))
	s.logger.Error("ImageSaver", err, map[string]interface{}{"format": format})
	return err
}
