// Package viewer shows a blend result in a fyne window: the composite, the
// two aligned inputs side by side, and a browser over every pyramid level.
package viewer

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"multires-spline/internal/blend"
	"multires-spline/internal/logger"
	"multires-spline/internal/raster"
)

const (
	ImageAreaWidth  = 500
	ImageAreaHeight = 400
)

type Viewer struct {
	window fyne.Window
	logger logger.Logger
	result *blend.Result
	sets   []blend.NamedPyramid

	composite  *canvas.Image
	left       *canvas.Image
	right      *canvas.Image
	level      *canvas.Image
	levelInfo  *widget.Label
	setSelect  *widget.Select
	levelInput *widget.Slider

	set   int
	index int
}

// New builds a window for result on app. The window is not shown.
func New(app fyne.App, title string, result *blend.Result, log logger.Logger) (*Viewer, error) {
	if result == nil {
		return nil, fmt.Errorf("no blend result to display")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	v := &Viewer{
		window: app.NewWindow(title),
		logger: log,
		result: result,
		sets:   result.Pyramids(),
	}

	composite, err := raster.ToImage(result.Composite)
	if err != nil {
		return nil, err
	}
	v.composite = newCanvasImage(composite)

	v.left = newCanvasImage(nil)
	v.right = newCanvasImage(nil)
	if len(result.Left.Gaussian) > 0 && len(result.Right.Gaussian) > 0 {
		if img, err := raster.ToImage(result.Left.Gaussian[0]); err == nil {
			v.left.Image = img
		}
		if img, err := raster.ToImage(result.Right.Gaussian[0]); err == nil {
			v.right.Image = img
		}
	}

	v.level = newCanvasImage(nil)
	v.levelInfo = widget.NewLabel("")

	v.window.SetContent(v.buildLayout())
	v.window.Resize(fyne.NewSize(ImageAreaWidth*2, ImageAreaHeight+120))

	if err := v.SelectLevel(0, 0); err != nil {
		return nil, err
	}
	return v, nil
}

func newCanvasImage(img image.Image) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.ScaleMode = canvas.ImageScaleSmooth
	c.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))
	return c
}

func (v *Viewer) buildLayout() fyne.CanvasObject {
	inputs := container.NewHSplit(
		container.NewBorder(widget.NewRichTextFromMarkdown("**Left**"), nil, nil, nil, v.left),
		container.NewBorder(widget.NewRichTextFromMarkdown("**Right**"), nil, nil, nil, v.right),
	)
	inputs.SetOffset(0.5)

	names := lo.Map(v.sets, func(set blend.NamedPyramid, _ int) string { return set.Name })
	v.setSelect = widget.NewSelect(names, func(name string) {
		if _, i, ok := lo.FindIndexOf(v.sets, func(set blend.NamedPyramid) bool { return set.Name == name }); ok {
			v.showLevel(i, v.index)
		}
	})

	v.levelInput = widget.NewSlider(0, float64(v.maxIndex()))
	v.levelInput.Step = 1
	v.levelInput.OnChanged = func(value float64) {
		v.showLevel(v.set, int(value))
	}

	controls := container.NewBorder(nil, nil, v.setSelect, v.levelInfo, v.levelInput)
	levels := container.NewBorder(controls, nil, nil, nil, v.level)

	return container.NewAppTabs(
		container.NewTabItem("Composite", v.composite),
		container.NewTabItem("Inputs", inputs),
		container.NewTabItem("Levels", levels),
	)
}

func (v *Viewer) maxIndex() int {
	deepest := 0
	for _, set := range v.sets {
		if n := len(set.Levels) - 1; n > deepest {
			deepest = n
		}
	}
	return deepest
}

// SelectLevel displays level index of the set-th pyramid of Result.Pyramids.
func (v *Viewer) SelectLevel(set, index int) error {
	if set < 0 || set >= len(v.sets) {
		return fmt.Errorf("pyramid %d out of range [0, %d)", set, len(v.sets))
	}
	if index < 0 || index >= len(v.sets[set].Levels) {
		return fmt.Errorf("level %d out of range [0, %d)", index, len(v.sets[set].Levels))
	}

	v.setSelect.SetSelected(v.sets[set].Name)
	v.levelInput.SetValue(float64(index))
	v.showLevel(set, index)
	return nil
}

func (v *Viewer) showLevel(set, index int) {
	levels := v.sets[set].Levels
	if len(levels) == 0 {
		return
	}
	if index >= len(levels) {
		index = len(levels) - 1
	}
	v.set, v.index = set, index

	bandPass := v.sets[set].BandPass && index < len(levels)-1
	img, err := raster.ToImage(raster.Visualize(levels[index], bandPass))
	if err != nil {
		v.logger.Error("Viewer", err, map[string]interface{}{
			"pyramid": v.sets[set].Name,
			"level":   index,
		})
		return
	}

	v.level.Image = img
	v.level.Refresh()
	v.levelInfo.SetText(fmt.Sprintf("%s %d: %s", v.sets[set].Name, index, levels[index].Shape()))
}

// Current reports the pyramid and level on display.
func (v *Viewer) Current() (set, index int) {
	return v.set, v.index
}

// LevelImage returns the image currently shown in the level browser.
func (v *Viewer) LevelImage() image.Image {
	return v.level.Image
}

func (v *Viewer) Window() fyne.Window {
	return v.window
}

// ShowAndRun blocks until the window is closed.
func (v *Viewer) ShowAndRun() {
	v.window.ShowAndRun()
}

// Close closes the window from any goroutine.
func (v *Viewer) Close() {
	fyne.Do(func() {
		v.window.Close()
	})
}
