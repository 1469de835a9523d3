// Package pipeline wires the camera pose store, trajectory interpolator,
// and output formatting into a single one-shot batch run.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/campath/internal/camera"
	"github.com/banshee-data/campath/internal/config"
	"github.com/banshee-data/campath/internal/fsutil"
	"github.com/banshee-data/campath/internal/trajectory"
	"github.com/banshee-data/campath/internal/units"
)

// Result summarizes a completed pipeline run.
type Result struct {
	RunID      string
	Keyframes  int
	Frames     int
	OutputPath string
}

// Run executes the full pipeline: load keyframes, filter by prefix,
// interpolate, build output records, and write the result. It is
// single-threaded and runs to completion or fails outright; no partial
// output is written on error.
func Run(fsys fsutil.FileSystem, cfg config.Config) (Result, error) {
	runID := uuid.New().String()
	start := time.Now()

	store, err := camera.Load(fsys, cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	log.Printf("[Pipeline] run %s: loaded %d keyframes from %s", runID, store.Len(), cfg.InputPath)

	keyframes := store.FilterPrefix(cfg.Prefix)
	if len(keyframes) == 0 {
		return Result{}, fmt.Errorf("pipeline: no keyframes match prefix %q in %s", cfg.Prefix, cfg.InputPath)
	}
	if cfg.Prefix != "" {
		log.Printf("[Pipeline] run %s: prefix %q selected %d of %d keyframes",
			runID, cfg.Prefix, len(keyframes), store.Len())
	}

	poses, err := trajectory.Interpolate(keyframes, cfg.DT, cfg.FPS)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	// The horizontal fov fixes the focal length; it is applied to both axes.
	focal := units.FovToFocal(units.DegToRad(cfg.FOVDegrees), cfg.Width)

	records := make([]camera.Record, len(poses))
	for i, pose := range poses {
		records[i] = camera.NewRecord(i, pose, cfg.Width, cfg.Height, focal, focal)
	}

	if err := camera.Save(fsys, cfg.OutputPath, records); err != nil {
		return Result{}, err
	}

	log.Printf("[Pipeline] run %s: wrote %d poses (%d keyframes) to %s in %.2fs",
		runID, len(records), len(keyframes), cfg.OutputPath, time.Since(start).Seconds())

	return Result{
		RunID:      runID,
		Keyframes:  len(keyframes),
		Frames:     len(records),
		OutputPath: cfg.OutputPath,
	}, nil
}
