package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	AppName    = "multires-spline"
	AppID      = "com.imageprocessing.multires-spline"
	AppVersion = "1.0.0"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           AppName,
		Short:         "Blend two images along a vertical seam with a multiresolution spline",
		Version:       fmt.Sprintf("%s (%s)", AppVersion, runtime.Version()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBlendCommand(), newLevelsCommand())
	return root
}
