// Package config defines the camera-path pipeline configuration and an
// optional JSON overlay loader.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds every recognized option of the pipeline. All options are
// explicit; nothing is read from the environment or hardcoded paths.
type Config struct {
	// InputPath is the keyframe cameras JSON file to read.
	InputPath string
	// OutputPath is the destination for the interpolated sequence.
	OutputPath string
	// Prefix filters keyframes by image-name prefix; empty selects all.
	Prefix string
	// Width and Height are the pixel dimensions stamped on every output record.
	Width  int
	Height int
	// FOVDegrees is the horizontal field of view; converted once to a focal
	// length applied to both axes.
	FOVDegrees float64
	// DT is the time interval (seconds) between consecutive input keyframes.
	DT float64
	// FPS is the target sample rate for interpolation.
	FPS float64
}

// Default returns the configuration the original capture workflow used.
// Paths are intentionally empty: they must always be supplied.
func Default() Config {
	return Config{
		Width:      1440,
		Height:     1920,
		FOVDegrees: 80.0,
		DT:         0.5,
		FPS:        30.0,
	}
}

// Validate checks that the configuration can drive a pipeline run.
// Zero or negative dt/fps are allowed: they degrade to keyframe-only output.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		return fmt.Errorf("fov must be in (0, 180) degrees, got %f", c.FOVDegrees)
	}
	return nil
}

// Overlay is a partial configuration read from a JSON file. Pointer fields
// distinguish "not set" from zero values, so partial files are safe.
type Overlay struct {
	InputPath  *string  `json:"input_path,omitempty"`
	OutputPath *string  `json:"output_path,omitempty"`
	Prefix     *string  `json:"prefix,omitempty"`
	Width      *int     `json:"width,omitempty"`
	Height     *int     `json:"height,omitempty"`
	FOVDegrees *float64 `json:"fov_degrees,omitempty"`
	DT         *float64 `json:"dt,omitempty"`
	FPS        *float64 `json:"fps,omitempty"`
}

// Apply copies the overlay's set fields onto cfg and returns the result.
func (o Overlay) Apply(cfg Config) Config {
	if o.InputPath != nil {
		cfg.InputPath = *o.InputPath
	}
	if o.OutputPath != nil {
		cfg.OutputPath = *o.OutputPath
	}
	if o.Prefix != nil {
		cfg.Prefix = *o.Prefix
	}
	if o.Width != nil {
		cfg.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Height = *o.Height
	}
	if o.FOVDegrees != nil {
		cfg.FOVDegrees = *o.FOVDegrees
	}
	if o.DT != nil {
		cfg.DT = *o.DT
	}
	if o.FPS != nil {
		cfg.FPS = *o.FPS
	}
	return cfg
}

// LoadOverlay reads a partial configuration from a JSON file. The file must
// have a .json extension and stay under the max file size.
func LoadOverlay(path string) (*Overlay, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var o Overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &o, nil
}
