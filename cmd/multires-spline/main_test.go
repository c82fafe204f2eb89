package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrayPNG(t *testing.T, path string, w, h int, v uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestEnsureExtension(t *testing.T) {
	assert.Equal(t, "out.png", ensureExtension("out.png", "jpeg"))
	assert.Equal(t, "out.jpg", ensureExtension("out", "jpg"))
	assert.Equal(t, "out.tiff", ensureExtension("out", "tiff"))
	assert.Equal(t, "out", ensureExtension("out", ""))
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	t.Setenv("SPLINE_LEVELS", "3")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	cmd := newBlendCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--levels", "5", "--jpeg-quality", "80"}))

	cfg, err := loadConfig(cmd, blendFlags{levels: 5, quality: 80, output: "x.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Levels)
	assert.Equal(t, 80, cfg.JPEGQuality)
	assert.Equal(t, "jpeg", cfg.OutputFormat)

	cmd = newBlendCommand()
	cfg, err = loadConfig(cmd, blendFlags{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Levels)

	_, err = loadConfig(newBlendCommand(), blendFlags{output: "x.unknown"})
	assert.Error(t, err)
}

func TestBlendCommandRequiresWork(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"blend", "a.png", "b.png"})
	root.SetOut(&bytes.Buffer{})
	assert.ErrorContains(t, root.Execute(), "nothing to do")
}

func TestLevelsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	writeGrayPNG(t, path, 20, 12, 77)

	var out bytes.Buffer
	root := newRootCommand()
	root.SetArgs([]string{"levels", path, "--levels", "2"})
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "20x12, 3 channels, max levels 3")
	assert.Contains(t, out.String(), "level 2: ")
	assert.NotContains(t, out.String(), "level 3: ")
}
