package pipeline

import (
	"errors"
	"fmt"

	"multires-spline/internal/logger"
)

// Loader decodes image files, trying each codec in order until one succeeds.
type Loader struct {
	codecs        []Codec
	logger        logger.Logger
	timingTracker TimingTracker
}

func NewLoader(codecs []Codec, log logger.Logger, tracker TimingTracker) *Loader {
	return &Loader{
		codecs:        codecs,
		logger:        log,
		timingTracker: tracker,
	}
}

func (l *Loader) LoadImage(path string) (*ImageData, error) {
	ctx := l.timingTracker.StartTiming("load_image")
	defer l.timingTracker.EndTiming(ctx)

	if len(l.codecs) == 0 {
		return nil, fmt.Errorf("no decoder configured")
	}

	l.logger.Debug("ImageLoader", "loading image", map[string]interface{}{
		"path":   path,
		"format": FormatFromPath(path),
	})

	var errs []error
	for _, codec := range l.codecs {
		img, err := codec.Decode(path)
		if err != nil {
			l.logger.Debug("ImageLoader", "decoder failed", map[string]interface{}{
				"codec": codec.Name(),
				"error": err.Error(),
			})
			errs = append(errs, fmt.Errorf("%s: %w", codec.Name(), err))
			continue
		}

		imageData := &ImageData{
			Image:  img,
			Path:   path,
			Format: FormatFromPath(path),
			Codec:  codec.Name(),
		}

		l.logger.Info("ImageLoader", "image loaded successfully", map[string]interface{}{
			"path":     path,
			"width":    imageData.Width(),
			"height":   imageData.Height(),
			"channels": imageData.Channels(),
			"codec":    codec.Name(),
		})
		return imageData, nil
	}

	return nil, fmt.Errorf("failed to load %s: %w", path, errors.Join(errs...))
}
