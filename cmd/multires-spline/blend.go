package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"multires-spline/internal/blend"
	"multires-spline/internal/config"
	"multires-spline/internal/debug/timing"
	"multires-spline/internal/logger"
	"multires-spline/internal/opencv/codec"
	"multires-spline/internal/pipeline"
	"multires-spline/internal/shutdown"
	"multires-spline/internal/viewer"
)

type blendFlags struct {
	output     string
	configPath string
	levels     int
	dumpDir    string
	preview    bool
	logFormat  string
	quality    int
}

func newBlendCommand() *cobra.Command {
	var flags blendFlags

	cmd := &cobra.Command{
		Use:   "blend LEFT RIGHT",
		Short: "Blend the left half of LEFT with the right half of RIGHT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if flags.output == "" && cfg.DumpDir == "" && !cfg.Preview {
				return fmt.Errorf("nothing to do: set --output, --dump-dir or --preview")
			}
			return runBlend(cmd, cfg, args[0], args[1], flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "path of the blended image")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML configuration file")
	cmd.Flags().IntVarP(&flags.levels, "levels", "l", blend.DefaultLevels, "pyramid depth")
	cmd.Flags().StringVar(&flags.dumpDir, "dump-dir", "", "write every pyramid level into this directory")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show the result in a window")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "console or json")
	cmd.Flags().IntVar(&flags.quality, "jpeg-quality", 0, "JPEG quality 1..100")
	return cmd
}

// loadConfig merges file, environment and explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, flags blendFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	set := cmd.Flags().Changed
	if set("levels") {
		cfg.Levels = flags.levels
	}
	if set("dump-dir") {
		cfg.DumpDir = flags.dumpDir
	}
	if set("preview") {
		cfg.Preview = flags.preview
	}
	if set("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if set("jpeg-quality") {
		cfg.JPEGQuality = flags.quality
	}
	if flags.output != "" && cfg.OutputFormat == "" {
		cfg.OutputFormat = pipeline.FormatFromPath(flags.output)
		if cfg.OutputFormat == "unknown" {
			return cfg, fmt.Errorf("cannot infer image format of %s", flags.output)
		}
	}

	return cfg, cfg.Validate()
}

func runBlend(cmd *cobra.Command, cfg config.Config, leftPath, rightPath, output string) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, cfg.LogFormat)

	log.Info("Application", "starting", map[string]interface{}{
		"version": AppVersion,
		"levels":  cfg.Levels,
		"left":    leftPath,
		"right":   rightPath,
	})

	tracker := timing.NewTracker()
	codecs := []pipeline.Codec{codec.New(), pipeline.NewStdCodec()}
	saver := pipeline.NewSaver(codecs, pipeline.EncodeOptions{JPEGQuality: cfg.JPEGQuality}, log, tracker)

	dumpFormat := cfg.OutputFormat
	if dumpFormat == "" || strings.EqualFold(dumpFormat, "jpeg") || strings.EqualFold(dumpFormat, "jpg") {
		dumpFormat = "png"
	}

	coordinator := pipeline.NewCoordinator(
		pipeline.NewLoader(codecs, log, tracker),
		blend.NewBlender(cfg.BlendOptions(), log),
		saver,
		pipeline.NewDumper(saver, dumpFormat),
		log,
	)

	manager := shutdown.NewManager(cmd.Context(), log)
	manager.Register("timing summary", func() {
		log.Info("Application", "timings", tracker.Summary())
	})
	manager.Listen()
	defer manager.Shutdown()

	if output != "" {
		output = ensureExtension(output, cfg.OutputFormat)
	}

	outcome, err := coordinator.Run(manager.Context(), pipeline.Request{
		LeftPath:   leftPath,
		RightPath:  rightPath,
		OutputPath: output,
		DumpDir:    cfg.DumpDir,
	})
	if err != nil {
		log.Error("Application", err, nil)
		return err
	}

	for op, d := range outcome.Result.Timings {
		tracker.Record("blend_"+op, d)
	}

	if !cfg.Preview {
		return nil
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{ID: AppID, Name: AppName, Version: AppVersion})

	preview, err := viewer.New(fyneApp, fmt.Sprintf("%s: %s | %s", AppName, filepath.Base(leftPath), filepath.Base(rightPath)), outcome.Result, log)
	if err != nil {
		return err
	}

	closed := make(chan struct{})
	go func() {
		select {
		case <-manager.Done():
			select {
			case <-closed:
			default:
				preview.Close()
			}
		case <-closed:
		}
	}()

	preview.ShowAndRun()
	close(closed)
	return nil
}

// ensureExtension appends the extension of format when path has none.
func ensureExtension(path, format string) string {
	if filepath.Ext(path) != "" || format == "" {
		return path
	}
	switch f := pipeline.NormalizeFormat(format); f {
	case "jpeg":
		return path + ".jpg"
	default:
		return path + "." + f
	}
}
