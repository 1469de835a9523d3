// Package main provides the campath batch tool: it densifies a sparse set
// of keyframe camera poses into a smooth sequence for playback or rendering.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/campath/internal/config"
	"github.com/banshee-data/campath/internal/fsutil"
	"github.com/banshee-data/campath/internal/pipeline"
	"github.com/banshee-data/campath/internal/version"
)

func parseFlags() (config.Config, bool) {
	defaults := config.Default()

	input := flag.String("input", "", "Keyframe cameras JSON file to read (required)")
	output := flag.String("output", "", "Destination JSON file for the interpolated sequence (required)")
	prefix := flag.String("prefix", "", "Image-name prefix filter; empty selects all keyframes")
	width := flag.Int("width", defaults.Width, "Image width in pixels stamped on output records")
	height := flag.Int("height", defaults.Height, "Image height in pixels stamped on output records")
	fov := flag.Float64("fov", defaults.FOVDegrees, "Horizontal field of view in degrees")
	dt := flag.Float64("dt", defaults.DT, "Time interval in seconds between consecutive keyframes")
	fps := flag.Float64("fps", defaults.FPS, "Target sample rate in frames per second")
	configPath := flag.String("config", "", "Optional JSON config file applied over flag values")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	cfg := config.Config{
		InputPath:  *input,
		OutputPath: *output,
		Prefix:     *prefix,
		Width:      *width,
		Height:     *height,
		FOVDegrees: *fov,
		DT:         *dt,
		FPS:        *fps,
	}

	if *configPath != "" {
		overlay, err := config.LoadOverlay(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config file: %v", err)
		}
		cfg = overlay.Apply(cfg)
	}

	return cfg, *showVersion
}

func main() {
	cfg, showVersion := parseFlags()

	if showVersion {
		fmt.Printf("campath %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	result, err := pipeline.Run(fsutil.OSFileSystem{}, cfg)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	fmt.Printf("Saved %d interpolated camera poses to %s\n", result.Frames, result.OutputPath)
}
