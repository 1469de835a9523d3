// Package units provides angular and optical unit conversions shared by the
// camera pipeline.
package units

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// FovToFocal converts a field of view (radians) to a focal length in pixel
// units, given the pixel extent of the corresponding image axis.
func FovToFocal(fov float64, pixels int) float64 {
	return float64(pixels) / (2 * math.Tan(fov/2))
}

// FocalToFov converts a focal length in pixel units back to a field of view
// in radians. Exact inverse of FovToFocal for positive inputs.
func FocalToFov(focal float64, pixels int) float64 {
	return 2 * math.Atan(float64(pixels)/(2*focal))
}
