package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"multires-spline/internal/blend"
	"multires-spline/internal/raster"
)

// Dumper writes every pyramid level of a blend result into a directory.
type Dumper struct {
	saver  *Saver
	format string
}

func NewDumper(saver *Saver, format string) *Dumper {
	if format == "" {
		format = "png"
	}
	return &Dumper{saver: saver, format: NormalizeFormat(format)}
}

// Dump writes <prefix>_<kind>_<level> images for both inputs and the
// spliced pyramid, and returns the paths written.
func (d *Dumper) Dump(dir string, result *blend.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dump directory: %w", err)
	}

	var written []string
	for _, set := range result.Pyramids() {
		last := len(set.Levels) - 1
		for i, level := range set.Levels {
			// the coarsest laplacian level is a low-pass residual
			bandPass := set.BandPass && i < last
			path := filepath.Join(dir, fmt.Sprintf("%s_%d%s", set.Name, i, extensionFor(d.format)))
			if err := d.saver.SaveImage(path, raster.Visualize(level, bandPass)); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}
