package blend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"multires-spline/internal/logger"
)

const component = "Blender"

// Options configures a Blender.
type Options struct {
	// Levels is the number of Reduce steps per pyramid.
	Levels int
}

func DefaultOptions() Options {
	return Options{Levels: DefaultLevels}
}

// Decomposition holds the pyramids built for one input.
type Decomposition struct {
	Gaussian  Pyramid
	Laplacian Pyramid
}

// Result is the outcome of one Blend call.
type Result struct {
	Composite Image
	Left      Decomposition
	Right     Decomposition
	Spliced   Pyramid
	Timings   map[string]time.Duration
}

// Quantize returns the composite as 8-bit samples.
func (r *Result) Quantize() []uint8 {
	return r.Composite.Quantize()
}

// NamedPyramid labels one pyramid of a Result. BandPass marks Laplacian
// pyramids, whose levels other than the last are zero-centered.
type NamedPyramid struct {
	Name     string
	Levels   Pyramid
	BandPass bool
}

// Pyramids lists the intermediate pyramids in a fixed order.
func (r *Result) Pyramids() []NamedPyramid {
	return []NamedPyramid{
		{"left_gaussian", r.Left.Gaussian, false},
		{"left_laplacian", r.Left.Laplacian, true},
		{"right_gaussian", r.Right.Gaussian, false},
		{"right_laplacian", r.Right.Laplacian, true},
		{"spliced", r.Spliced, true},
	}
}

// Blender runs the multiresolution spline over two images.
type Blender struct {
	opts   Options
	logger logger.Logger
}

func NewBlender(opts Options, log logger.Logger) *Blender {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Blender{opts: opts, logger: log}
}

// Blend aligns left and right, splits both into Laplacian pyramids, splices
// them at the vertical center line and collapses the result.
// ctx is checked between stages only.
func (b *Blender) Blend(ctx context.Context, left, right Image) (*Result, error) {
	result := &Result{Timings: make(map[string]time.Duration)}

	b.logger.Debug(component, "blend started", map[string]interface{}{
		"left":   left.Shape().String(),
		"right":  right.Shape().String(),
		"levels": b.opts.Levels,
	})

	start := time.Now()
	left, right, err := Align(left, right)
	if err != nil {
		return nil, fmt.Errorf("failed to align inputs: %w", err)
	}
	result.Timings["align"] = time.Since(start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	var g errgroup.Group
	g.Go(func() error {
		d, err := Decompose(left, b.opts.Levels)
		result.Left = d
		return err
	})
	g.Go(func() error {
		d, err := Decompose(right, b.opts.Levels)
		result.Right = d
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build pyramids: %w", err)
	}
	result.Timings["decompose"] = time.Since(start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	result.Spliced, err = Splice(result.Left.Laplacian, result.Right.Laplacian)
	if err != nil {
		return nil, fmt.Errorf("failed to splice pyramids: %w", err)
	}
	result.Timings["splice"] = time.Since(start)

	start = time.Now()
	result.Composite, err = Collapse(result.Spliced)
	if err != nil {
		return nil, fmt.Errorf("failed to collapse pyramid: %w", err)
	}
	result.Timings["collapse"] = time.Since(start)

	b.logger.Info(component, "blend completed", map[string]interface{}{
		"size":   result.Composite.Shape().String(),
		"levels": result.Spliced.Levels(),
	})

	return result, nil
}

// Decompose builds the Gaussian and Laplacian pyramids of img.
func Decompose(img Image, levels int) (Decomposition, error) {
	gauss, err := GaussianPyramid(img, levels)
	if err != nil {
		return Decomposition{}, err
	}
	lap, err := LaplacianPyramid(gauss)
	if err != nil {
		return Decomposition{}, err
	}
	return Decomposition{Gaussian: gauss, Laplacian: lap}, nil
}
