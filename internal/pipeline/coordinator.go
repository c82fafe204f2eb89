package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"multires-spline/internal/blend"
	"multires-spline/internal/logger"
)

// Request names the files of one blend run.
type Request struct {
	LeftPath   string
	RightPath  string
	OutputPath string
	// DumpDir receives every pyramid level when not empty.
	DumpDir string
}

// Outcome is what a completed run produced.
type Outcome struct {
	Left    *ImageData
	Right   *ImageData
	Result  *blend.Result
	Metrics BlendMetrics
	Dumped  []string
}

// Coordinator sequences load, blend, save and the optional level dump.
type Coordinator struct {
	mu      sync.Mutex
	loader  *Loader
	blender *blend.Blender
	saver   *Saver
	dumper  *Dumper
	logger  logger.Logger
}

func NewCoordinator(loader *Loader, blender *blend.Blender, saver *Saver, dumper *Dumper, log logger.Logger) *Coordinator {
	return &Coordinator{
		loader:  loader,
		blender: blender,
		saver:   saver,
		dumper:  dumper,
		logger:  log,
	}
}

func (c *Coordinator) Run(ctx context.Context, req Request) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := &Outcome{}

	var g errgroup.Group
	g.Go(func() error {
		data, err := c.loader.LoadImage(req.LeftPath)
		outcome.Left = data
		return err
	})
	g.Go(func() error {
		data, err := c.loader.LoadImage(req.RightPath)
		outcome.Right = data
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := c.blender.Blend(ctx, outcome.Left.Image, outcome.Right.Image)
	if err != nil {
		return nil, fmt.Errorf("blend failed: %w", err)
	}
	outcome.Result = result
	outcome.Metrics = CalculateBlendMetrics(result)

	c.logger.Info("Coordinator", "blend metrics", map[string]interface{}{
		"left_psnr_db":  outcome.Metrics.LeftPSNR,
		"right_psnr_db": outcome.Metrics.RightPSNR,
		"seam_step":     outcome.Metrics.SeamStep,
	})

	if req.OutputPath != "" {
		if err := c.saver.SaveImage(req.OutputPath, result.Composite); err != nil {
			return nil, err
		}
	}

	if req.DumpDir != "" && c.dumper != nil {
		written, err := c.dumper.Dump(req.DumpDir, result)
		if err != nil {
			return nil, fmt.Errorf("failed to dump pyramid levels: %w", err)
		}
		outcome.Dumped = written
		c.logger.Info("Coordinator", "pyramid levels written", map[string]interface{}{
			"dir":   req.DumpDir,
			"files": len(written),
		})
	}

	return outcome, nil
}
