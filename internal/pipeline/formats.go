package pipeline

import (
	"path/filepath"
	"strings"
)

// FormatFromPath maps a file extension onto a format name.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tiff", ".tif":
		return "tiff"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}

// NormalizeFormat folds aliases such as "jpg" onto their canonical name.
func NormalizeFormat(format string) string {
	switch f := strings.ToLower(format); f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return f
	}
}

func extensionFor(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "tiff":
		return ".tiff"
	default:
		return "." + format
	}
}
