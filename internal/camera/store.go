// Package camera loads keyframe camera poses from JSON, filters them by
// name prefix, and serializes dense camera records back to the same shape.
package camera

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/banshee-data/campath/internal/fsutil"
	"github.com/banshee-data/campath/internal/geom"
)

// keyframeJSON mirrors one entry of the input file. Pointer fields let us
// distinguish absent fields from zero values; extra fields in the source
// format (id, width, height, fx, fy) are ignored on load.
type keyframeJSON struct {
	ImgName  *string      `json:"img_name"`
	Position *[]float64   `json:"position"`
	Rotation *[][]float64 `json:"rotation"`
}

// Store holds named world-to-camera poses in ascending name order.
//
// Lexicographic name order is the sole temporal ordering used downstream;
// callers must ensure names sort into playback order (e.g. zero-padded frame
// indices — "10" sorts before "2" otherwise). This matches the upstream file
// convention and is deliberately not corrected here.
type Store struct {
	poses map[string]geom.Pose
	names []string
}

// Load reads keyframe poses from a JSON file on the given filesystem. Each
// entry's position and rotation are interpreted as a camera-to-world
// transform and inverted to world-to-camera before storage. Duplicate names
// silently overwrite.
func Load(fsys fsutil.FileSystem, path string) (*Store, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("camera: read %s: %w", path, err)
	}

	var entries []keyframeJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("camera: parse %s: %w", path, err)
	}

	s := &Store{poses: make(map[string]geom.Pose, len(entries))}
	for i, e := range entries {
		if e.ImgName == nil {
			return nil, fmt.Errorf("camera: entry %d: missing img_name", i)
		}
		if e.Position == nil {
			return nil, fmt.Errorf("camera: entry %d (%s): missing position", i, *e.ImgName)
		}
		if e.Rotation == nil {
			return nil, fmt.Errorf("camera: entry %d (%s): missing rotation", i, *e.ImgName)
		}
		camToWorld, err := poseFromJSON(*e.Position, *e.Rotation)
		if err != nil {
			return nil, fmt.Errorf("camera: entry %d (%s): %w", i, *e.ImgName, err)
		}
		s.poses[*e.ImgName] = camToWorld.Inverse()
	}

	s.names = make([]string, 0, len(s.poses))
	for name := range s.poses {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

func poseFromJSON(position []float64, rotation [][]float64) (geom.Pose, error) {
	if len(position) != 3 {
		return geom.Pose{}, fmt.Errorf("position has %d elements, want 3", len(position))
	}
	if len(rotation) != 3 {
		return geom.Pose{}, fmt.Errorf("rotation has %d rows, want 3", len(rotation))
	}
	var rows [3][3]float64
	for i, row := range rotation {
		if len(row) != 3 {
			return geom.Pose{}, fmt.Errorf("rotation row %d has %d elements, want 3", i, len(row))
		}
		copy(rows[i][:], row)
	}
	return geom.PoseFromRows(rows, [3]float64{position[0], position[1], position[2]}), nil
}

// Len returns the number of stored poses.
func (s *Store) Len() int { return len(s.names) }

// Names returns the stored names in ascending lexicographic order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Pose returns the world-to-camera pose for a name.
func (s *Store) Pose(name string) (geom.Pose, bool) {
	p, ok := s.poses[name]
	return p, ok
}

// FilterPrefix returns the poses whose name starts with prefix, preserving
// the store's name order. An empty prefix selects every pose.
func (s *Store) FilterPrefix(prefix string) []geom.Pose {
	out := make([]geom.Pose, 0, len(s.names))
	for _, name := range s.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, s.poses[name])
		}
	}
	return out
}
