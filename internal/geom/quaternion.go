package geom

import "math"

// Quaternion is a unit quaternion representing a 3D rotation.
type Quaternion struct {
	W, X, Y, Z float64
}

// Normalize returns the quaternion scaled to unit length. A zero quaternion
// normalizes to identity rather than NaN.
func (q Quaternion) Normalize() Quaternion {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return Quaternion{W: 1}
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Dot returns the 4D dot product of two quaternions. Its sign indicates
// whether the pair lies on the same hemisphere of the rotation double cover.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// neg returns the antipodal quaternion, which represents the same rotation.
func (q Quaternion) neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// QuatFromMatrix converts a row-major 3x3 rotation matrix to a unit
// quaternion. The branch is chosen by the largest diagonal term (Shepperd's
// method) so the divisor stays well away from zero for any input rotation,
// including rotations near 180 degrees.
func QuatFromMatrix(r [9]float64) Quaternion {
	trace := r[0] + r[4] + r[8]
	var q Quaternion
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1.0) * 2 // 4w
		q.W = 0.25 * s
		q.X = (r[7] - r[5]) / s
		q.Y = (r[2] - r[6]) / s
		q.Z = (r[3] - r[1]) / s
	case r[0] > r[4] && r[0] > r[8]:
		s := math.Sqrt(1.0+r[0]-r[4]-r[8]) * 2 // 4x
		q.W = (r[7] - r[5]) / s
		q.X = 0.25 * s
		q.Y = (r[1] + r[3]) / s
		q.Z = (r[2] + r[6]) / s
	case r[4] > r[8]:
		s := math.Sqrt(1.0+r[4]-r[0]-r[8]) * 2 // 4y
		q.W = (r[2] - r[6]) / s
		q.X = (r[1] + r[3]) / s
		q.Y = 0.25 * s
		q.Z = (r[5] + r[7]) / s
	default:
		s := math.Sqrt(1.0+r[8]-r[0]-r[4]) * 2 // 4z
		q.W = (r[3] - r[1]) / s
		q.X = (r[2] + r[6]) / s
		q.Y = (r[5] + r[7]) / s
		q.Z = 0.25 * s
	}
	return q.Normalize()
}

// Matrix converts the quaternion back to a row-major 3x3 rotation matrix.
// The quaternion is normalized first so the result is orthonormal even if
// the input has drifted slightly off unit length.
func (q Quaternion) Matrix() [9]float64 {
	q = q.Normalize()
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return [9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// slerpLerpThreshold is the cosine above which the two rotations are close
// enough that sin(theta) loses precision; below that angle a normalized
// linear blend is indistinguishable from the spherical one.
const slerpLerpThreshold = 0.9995

// Slerp spherically interpolates between two rotations along the shortest
// arc. alpha=0 returns a, alpha=1 returns b; intermediate values sweep at
// constant angular velocity and always yield a valid unit quaternion.
func Slerp(a, b Quaternion, alpha float64) Quaternion {
	a = a.Normalize()
	b = b.Normalize()

	dot := a.Dot(b)
	// The double cover maps q and -q to the same rotation; flip one endpoint
	// so interpolation takes the shorter of the two arcs.
	if dot < 0 {
		b = b.neg()
		dot = -dot
	}

	if dot > slerpLerpThreshold {
		return Quaternion{
			W: a.W + (b.W-a.W)*alpha,
			X: a.X + (b.X-a.X)*alpha,
			Y: a.Y + (b.Y-a.Y)*alpha,
			Z: a.Z + (b.Z-a.Z)*alpha,
		}.Normalize()
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-alpha)*theta) / sinTheta
	wb := math.Sin(alpha*theta) / sinTheta
	return Quaternion{
		W: wa*a.W + wb*b.W,
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
	}.Normalize()
}
