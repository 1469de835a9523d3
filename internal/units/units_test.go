package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFovToFocal(t *testing.T) {
	t.Parallel()

	// A 90-degree fov means tan(fov/2)=1, so the focal length is half the
	// pixel extent.
	assert.InDelta(t, 720.0, FovToFocal(math.Pi/2, 1440), 1e-9)
}

func TestFovFocalInverse(t *testing.T) {
	t.Parallel()

	pixels := []int{1, 640, 1440, 1920, 4096}
	for _, p := range pixels {
		for fov := 0.05; fov < math.Pi; fov += 0.15 {
			got := FocalToFov(FovToFocal(fov, p), p)
			assert.InDelta(t, fov, got, 1e-9, "fov=%v pixels=%d", fov, p)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 180.0, RadToDeg(math.Pi), 1e-12)
	for deg := -360.0; deg <= 360.0; deg += 37.5 {
		assert.InDelta(t, deg, RadToDeg(DegToRad(deg)), 1e-9)
	}
}
