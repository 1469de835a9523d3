// Package trajectory densifies an ordered sequence of camera poses by
// inserting rotation-aware in-between frames at a fixed sample rate.
package trajectory

import (
	"errors"

	"github.com/banshee-data/campath/internal/geom"
)

// ErrNoPoses is returned when interpolation is requested over an empty
// keyframe sequence.
var ErrNoPoses = errors.New("trajectory: no poses to interpolate")

// SegmentFrames returns the number of output slots for one keyframe segment:
// floor(dt*fps). Values at or below one mean the segment contributes only its
// trailing keyframe.
func SegmentFrames(dt, fps float64) int {
	return int(dt * fps)
}

// Interpolate expands an ordered sequence of world-to-camera poses into a
// dense trajectory. The first keyframe is emitted as-is; for each consecutive
// pair, floor(dt*fps)-1 in-between poses are generated at evenly spaced
// fractions (slerp on rotation, lerp on translation), followed by the pair's
// trailing keyframe exactly once.
//
// A segment frame count at or below one produces no in-betweens for that
// segment. Zero or negative dt/fps therefore degrade to keyframe-only output
// rather than failing. An empty input returns ErrNoPoses.
func Interpolate(poses []geom.Pose, dt, fps float64) ([]geom.Pose, error) {
	if len(poses) == 0 {
		return nil, ErrNoPoses
	}

	out := make([]geom.Pose, 0, estimateLen(len(poses), dt, fps))
	out = append(out, poses[0])

	for i := 0; i < len(poses)-1; i++ {
		// Recomputed per segment to match the per-pair semantics, even
		// though dt and fps are fixed for a run.
		numFrames := SegmentFrames(dt, fps)

		for j := 1; j < numFrames; j++ {
			alpha := float64(j) / float64(numFrames)
			out = append(out, geom.InterpolatePose(poses[i], poses[i+1], alpha))
		}

		// The trailing keyframe is emitted once per segment; it also seeds
		// the next segment but is never duplicated in the output.
		out = append(out, poses[i+1])
	}

	return out, nil
}

func estimateLen(keyframes int, dt, fps float64) int {
	perSegment := SegmentFrames(dt, fps)
	if perSegment < 1 {
		perSegment = 1
	}
	return 1 + (keyframes-1)*perSegment
}
