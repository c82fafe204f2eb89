package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"multires-spline/internal/blend"
	"multires-spline/internal/debug/timing"
	"multires-spline/internal/logger"
	"multires-spline/internal/opencv/codec"
	"multires-spline/internal/pipeline"
)

func newLevelsCommand() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "levels IMAGE",
		Short: "Print the deepest usable pyramid and its level shapes for IMAGE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := pipeline.NewLoader(
				[]pipeline.Codec{codec.New(), pipeline.NewStdCodec()},
				logger.NopLogger{},
				timing.NewTracker(),
			)
			data, err := loader.LoadImage(args[0])
			if err != nil {
				return err
			}

			maxLevels := blend.MaxLevels(data.Height(), data.Width())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %dx%d, %d channels, max levels %d\n",
				args[0], data.Width(), data.Height(), data.Channels(), maxLevels)

			if !cmd.Flags().Changed("levels") {
				depth = maxLevels
			}
			pyr, err := blend.GaussianPyramid(data.Image, depth)
			if err != nil {
				return err
			}
			for i, shape := range pyr.Shapes() {
				fmt.Fprintf(out, "  level %d: %s\n", i, shape)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "levels", "l", blend.DefaultLevels, "pyramid depth to list")
	return cmd
}
