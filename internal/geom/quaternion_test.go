package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		r    [9]float64
	}{
		{"identity", [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"small z rotation", rotZ(0.1)},
		{"quarter turn x", rotX(math.Pi / 2)},
		{"large z rotation", rotZ(2.9)},
		{"near half turn z", rotZ(math.Pi - 1e-4)},
		{"half turn x", rotX(math.Pi)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			back := QuatFromMatrix(tc.r).Matrix()
			for i := range tc.r {
				assert.InDelta(t, tc.r[i], back[i], 1e-9, "element %d", i)
			}
		})
	}
}

func TestSlerpEndpoints(t *testing.T) {
	t.Parallel()

	a := QuatFromMatrix(rotZ(0.3))
	b := QuatFromMatrix(rotZ(2.1))

	got := Slerp(a, b, 0)
	assert.InDelta(t, a.W, got.W, 1e-12)
	assert.InDelta(t, a.Z, got.Z, 1e-12)

	got = Slerp(a, b, 1)
	assert.InDelta(t, b.W, got.W, 1e-12)
	assert.InDelta(t, b.Z, got.Z, 1e-12)
}

func TestSlerpShortestArc(t *testing.T) {
	t.Parallel()

	t.Run("antipodal quaternion representation", func(t *testing.T) {
		t.Parallel()
		a := QuatFromMatrix(rotZ(0.4))
		b := QuatFromMatrix(rotZ(0.9)).neg() // same rotation, opposite hemisphere
		mid := Slerp(a, b, 0.5).Matrix()
		want := rotZ(0.65)
		for i := range want {
			assert.InDelta(t, want[i], mid[i], 1e-9)
		}
	})

	t.Run("near 180 degree separation stays valid", func(t *testing.T) {
		t.Parallel()
		a := QuatFromMatrix(rotZ(0))
		b := QuatFromMatrix(rotZ(math.Pi - 1e-3))
		for _, alpha := range []float64{0.1, 0.5, 0.9} {
			assertRotationValid(t, Slerp(a, b, alpha).Matrix())
		}
		// Midpoint should sit halfway along the arc.
		mid := Slerp(a, b, 0.5).Matrix()
		want := rotZ((math.Pi - 1e-3) / 2)
		for i := range want {
			assert.InDelta(t, want[i], mid[i], 1e-6)
		}
	})
}

func TestSlerpNearlyEqualFallsBackToLerp(t *testing.T) {
	t.Parallel()

	a := QuatFromMatrix(rotZ(0.500000))
	b := QuatFromMatrix(rotZ(0.500001))
	got := Slerp(a, b, 0.5)
	n := math.Sqrt(got.W*got.W + got.X*got.X + got.Y*got.Y + got.Z*got.Z)
	assert.InDelta(t, 1.0, n, 1e-12, "result must stay unit length")
	assertRotationValid(t, got.Matrix())
}

func TestNormalizeZeroQuaternion(t *testing.T) {
	t.Parallel()

	q := Quaternion{}.Normalize()
	assert.Equal(t, Quaternion{W: 1}, q)
}
