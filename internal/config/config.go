package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"multires-spline/internal/blend"
	"multires-spline/internal/logger"
)

// Config holds the settings of one blend run.
type Config struct {
	Levels       int    `yaml:"levels"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	OutputFormat string `yaml:"output_format"`
	JPEGQuality  int    `yaml:"jpeg_quality"`
	DumpDir      string `yaml:"dump_dir"`
	Preview      bool   `yaml:"preview"`
}

func Default() Config {
	return Config{
		Levels:       blend.DefaultLevels,
		LogLevel:     "info",
		LogFormat:    "console",
		OutputFormat: "",
		JPEGQuality:  95,
	}
}

// Load starts from Default, merges the YAML file at path when path is not
// empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = logger.LevelFromEnv(c.LogLevel)

	if v := os.Getenv("SPLINE_LEVELS"); v != "" {
		levels, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SPLINE_LEVELS %q: %w", v, err)
		}
		c.Levels = levels
	}
	return nil
}

// Validate rejects settings the pipeline cannot honor.
func (c Config) Validate() error {
	if c.Levels < 0 {
		return fmt.Errorf("levels must be non-negative, got %d", c.Levels)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be within 1..100, got %d", c.JPEGQuality)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log_format: %q", c.LogFormat)
	}
	switch strings.ToLower(c.OutputFormat) {
	case "", "png", "jpeg", "jpg", "bmp", "tiff":
	default:
		return fmt.Errorf("unsupported output_format: %q", c.OutputFormat)
	}
	return nil
}

// BlendOptions derives the blend.Options for this configuration.
func (c Config) BlendOptions() blend.Options {
	return blend.Options{Levels: c.Levels}
}
