// Package geom provides rigid-transform primitives for camera trajectories:
// poses as rotation+translation pairs, homogeneous 4x4 embedding and block
// inversion, and quaternion-based rotation interpolation.
package geom

// Pose is a rigid transform between two 3D frames: a 3x3 rotation stored
// row-major plus a translation vector. No scaling or shearing.
//
// The rotation block is assumed orthonormal with determinant +1; callers are
// responsible for feeding valid rotations (no validation is performed here).
type Pose struct {
	R [9]float64 // row-major: r00,r01,r02, r10,r11,r12, r20,r21,r22
	T [3]float64
}

// PoseFromRows builds a Pose from a nested 3x3 rotation and a translation,
// the shape camera JSON files carry.
func PoseFromRows(rotation [3][3]float64, translation [3]float64) Pose {
	var p Pose
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p.R[i*3+j] = rotation[i][j]
		}
	}
	p.T = translation
	return p
}

// Rows returns the rotation block as a nested 3x3 array for serialization.
func (p Pose) Rows() [3][3]float64 {
	var rows [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = p.R[i*3+j]
		}
	}
	return rows
}

// Matrix4 embeds the pose into a 4x4 homogeneous transform, row-major:
// m00,m01,m02,m03, m10,... with the bottom row 0,0,0,1.
func (p Pose) Matrix4() [16]float64 {
	return [16]float64{
		p.R[0], p.R[1], p.R[2], p.T[0],
		p.R[3], p.R[4], p.R[5], p.T[1],
		p.R[6], p.R[7], p.R[8], p.T[2],
		0, 0, 0, 1,
	}
}

// PoseFromMatrix4 extracts the rotation and translation blocks from a 4x4
// row-major homogeneous transform. The bottom row is ignored.
func PoseFromMatrix4(m [16]float64) Pose {
	return Pose{
		R: [9]float64{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]},
		T: [3]float64{m[3], m[7], m[11]},
	}
}

// Inverse returns the inverse rigid transform using block inversion:
// R' = Rᵀ and t' = -Rᵀ·t. This is exact for valid rotations and avoids a
// general 4x4 matrix inversion.
func (p Pose) Inverse() Pose {
	var inv Pose
	// Transpose of the rotation block.
	inv.R = [9]float64{
		p.R[0], p.R[3], p.R[6],
		p.R[1], p.R[4], p.R[7],
		p.R[2], p.R[5], p.R[8],
	}
	// t' = -Rᵀ·t
	inv.T[0] = -(inv.R[0]*p.T[0] + inv.R[1]*p.T[1] + inv.R[2]*p.T[2])
	inv.T[1] = -(inv.R[3]*p.T[0] + inv.R[4]*p.T[1] + inv.R[5]*p.T[2])
	inv.T[2] = -(inv.R[6]*p.T[0] + inv.R[7]*p.T[1] + inv.R[8]*p.T[2])
	return inv
}

// Apply transforms the point (x,y,z) by the pose: R·p + t.
func (p Pose) Apply(x, y, z float64) (wx, wy, wz float64) {
	wx = p.R[0]*x + p.R[1]*y + p.R[2]*z + p.T[0]
	wy = p.R[3]*x + p.R[4]*y + p.R[5]*z + p.T[1]
	wz = p.R[6]*x + p.R[7]*y + p.R[8]*z + p.T[2]
	return
}

// Lerp3 linearly interpolates between two vectors at parameter alpha.
func Lerp3(a, b [3]float64, alpha float64) [3]float64 {
	return [3]float64{
		a[0] + (b[0]-a[0])*alpha,
		a[1] + (b[1]-a[1])*alpha,
		a[2] + (b[2]-a[2])*alpha,
	}
}

// InterpolatePose blends two rigid transforms at parameter alpha: spherical
// linear interpolation on the rotation, linear interpolation on the
// translation. alpha=0 yields a, alpha=1 yields b.
func InterpolatePose(a, b Pose, alpha float64) Pose {
	qa := QuatFromMatrix(a.R)
	qb := QuatFromMatrix(b.R)
	return Pose{
		R: Slerp(qa, qb, alpha).Matrix(),
		T: Lerp3(a.T, b.T, alpha),
	}
}
