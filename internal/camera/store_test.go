package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/campath/internal/fsutil"
	"github.com/banshee-data/campath/internal/geom"
)

const keyframesJSON = `[
  {
    "id": 0,
    "img_name": "a_1",
    "width": 1440,
    "height": 1920,
    "position": [1.0, 2.0, 3.0],
    "rotation": [[1, 0, 0], [0, 1, 0], [0, 0, 1]],
    "fy": 858.0,
    "fx": 858.0
  },
  {
    "img_name": "a_2",
    "position": [0.0, 0.0, 4.0],
    "rotation": [[0, -1, 0], [1, 0, 0], [0, 0, 1]]
  },
  {
    "img_name": "b_1",
    "position": [-1.0, 0.5, 0.0],
    "rotation": [[1, 0, 0], [0, 0, -1], [0, 1, 0]]
  }
]`

func writeKeyframes(t *testing.T, content string) fsutil.FileSystem {
	t.Helper()
	fsys := fsutil.NewMemoryFileSystem()
	require.NoError(t, fsys.WriteFile("cameras.json", []byte(content), 0644))
	return fsys
}

func TestLoadInvertsToWorldToCamera(t *testing.T) {
	t.Parallel()

	store, err := Load(writeKeyframes(t, keyframesJSON), "cameras.json")
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	// a_2 is a quarter turn about Z with camera at (0,0,4) in the world;
	// the stored pose must be the inverse of that camera-to-world transform.
	camToWorld := geom.PoseFromRows(
		[3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		[3]float64{0, 0, 4},
	)
	want := camToWorld.Inverse()

	got, ok := store.Pose("a_2")
	require.True(t, ok)
	for i := range want.R {
		assert.InDelta(t, want.R[i], got.R[i], 1e-12)
	}
	for i := range want.T {
		assert.InDelta(t, want.T[i], got.T[i], 1e-12)
	}
}

func TestLoadOrdersLexicographically(t *testing.T) {
	t.Parallel()

	t.Run("sorted names", func(t *testing.T) {
		t.Parallel()
		store, err := Load(writeKeyframes(t, keyframesJSON), "cameras.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"a_1", "a_2", "b_1"}, store.Names())
	})

	t.Run("numeric names sort as strings", func(t *testing.T) {
		t.Parallel()
		// "10" sorts before "2": lexicographic order is the documented
		// contract, even when it disagrees with numeric frame order.
		content := `[
  {"img_name": "2", "position": [0,0,0], "rotation": [[1,0,0],[0,1,0],[0,0,1]]},
  {"img_name": "10", "position": [0,0,0], "rotation": [[1,0,0],[0,1,0],[0,0,1]]},
  {"img_name": "1", "position": [0,0,0], "rotation": [[1,0,0],[0,1,0],[0,0,1]]}
]`
		store, err := Load(writeKeyframes(t, content), "cameras.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "10", "2"}, store.Names())
	})
}

func TestFilterPrefix(t *testing.T) {
	t.Parallel()

	store, err := Load(writeKeyframes(t, keyframesJSON), "cameras.json")
	require.NoError(t, err)

	t.Run("prefix selects matching names in order", func(t *testing.T) {
		t.Parallel()
		got := store.FilterPrefix("a_")
		require.Len(t, got, 2)
		wantFirst, _ := store.Pose("a_1")
		wantSecond, _ := store.Pose("a_2")
		assert.Equal(t, wantFirst, got[0])
		assert.Equal(t, wantSecond, got[1])
	})

	t.Run("empty prefix selects all", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, store.FilterPrefix(""), 3)
	})

	t.Run("unmatched prefix selects none", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, store.FilterPrefix("z_"))
	})
}

func TestLoadStructuralErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"missing img_name", `[{"position": [0,0,0], "rotation": [[1,0,0],[0,1,0],[0,0,1]]}]`},
		{"missing position", `[{"img_name": "x", "rotation": [[1,0,0],[0,1,0],[0,0,1]]}]`},
		{"missing rotation", `[{"img_name": "x", "position": [0,0,0]}]`},
		{"short position", `[{"img_name": "x", "position": [0,0], "rotation": [[1,0,0],[0,1,0],[0,0,1]]}]`},
		{"wrong rotation rows", `[{"img_name": "x", "position": [0,0,0], "rotation": [[1,0,0],[0,1,0]]}]`},
		{"wrong rotation row length", `[{"img_name": "x", "position": [0,0,0], "rotation": [[1,0],[0,1],[0,0]]}]`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeKeyframes(t, tc.content), "cameras.json")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(fsutil.NewMemoryFileSystem(), "absent.json")
	assert.Error(t, err)
}

func TestRecordRoundTripsInputFrame(t *testing.T) {
	t.Parallel()

	// Loading inverts camera-to-world to world-to-camera; building a record
	// inverts back. Position and rotation must round-trip to the input.
	store, err := Load(writeKeyframes(t, keyframesJSON), "cameras.json")
	require.NoError(t, err)

	pose, ok := store.Pose("a_2")
	require.True(t, ok)
	rec := NewRecord(0, pose, 1440, 1920, 858.0, 858.0)

	assert.InDelta(t, 0.0, rec.Position[0], 1e-12)
	assert.InDelta(t, 0.0, rec.Position[1], 1e-12)
	assert.InDelta(t, 4.0, rec.Position[2], 1e-12)

	wantRot := [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, wantRot[i][j], rec.Rotation[i][j], 1e-12, "rotation (%d,%d)", i, j)
		}
	}
}

func TestNewRecordNaming(t *testing.T) {
	t.Parallel()

	identity := geom.Pose{R: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
	rec := NewRecord(42, identity, 1440, 1920, 857.5, 857.5)
	assert.Equal(t, 42, rec.ID)
	assert.Equal(t, "000042", rec.ImgName)
	assert.Equal(t, 1440, rec.Width)
	assert.Equal(t, 1920, rec.Height)
	assert.InDelta(t, 857.5, rec.FX, math.SmallestNonzeroFloat64)
	assert.InDelta(t, 857.5, rec.FY, math.SmallestNonzeroFloat64)
}
