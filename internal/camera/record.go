package camera

import (
	"encoding/json"
	"fmt"

	"github.com/banshee-data/campath/internal/fsutil"
	"github.com/banshee-data/campath/internal/geom"
)

// Record is one camera in the output file. Field order matches the upstream
// cameras.json convention; positions and rotations are written in the
// camera-to-world frame.
type Record struct {
	ID       int         `json:"id"`
	ImgName  string      `json:"img_name"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Position []float64   `json:"position"`
	Rotation [][]float64 `json:"rotation"`
	FY       float64     `json:"fy"`
	FX       float64     `json:"fx"`
}

// NewRecord builds the output record for one frame of the dense trajectory.
// The pose is world-to-camera, as stored; the record carries its inverse
// (camera position and orientation in the world frame). Names are the
// zero-padded sequential frame index, not the original keyframe name.
func NewRecord(id int, pose geom.Pose, width, height int, fx, fy float64) Record {
	camToWorld := pose.Inverse()
	rows := camToWorld.Rows()
	rotation := make([][]float64, 3)
	for i := range rows {
		rotation[i] = []float64{rows[i][0], rows[i][1], rows[i][2]}
	}
	return Record{
		ID:       id,
		ImgName:  fmt.Sprintf("%06d", id),
		Width:    width,
		Height:   height,
		Position: []float64{camToWorld.T[0], camToWorld.T[1], camToWorld.T[2]},
		Rotation: rotation,
		FY:       fy,
		FX:       fx,
	}
}

// Save writes records as a pretty-printed JSON array (2-space indent),
// overwriting any existing file at path.
func Save(fsys fsutil.FileSystem, path string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("camera: marshal records: %w", err)
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("camera: write %s: %w", path, err)
	}
	return nil
}

// LoadRecords reads an output-format camera file back into records. Used by
// the plotting tools; load of keyframe inputs goes through Load instead.
func LoadRecords(fsys fsutil.FileSystem, path string) ([]Record, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("camera: read %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("camera: parse %s: %w", path, err)
	}
	return records, nil
}
