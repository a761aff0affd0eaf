package gm

import "math"

// Affine is a general affine transformation: a Matrix that may rotate, scale
// or shear, followed by a Translation. A rigid Transform converts into an
// Affine using Transform.AsAffine and back using Affine.AsTransform.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec applies only the matrix to a vector, the translation is ignored.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul returns the affine transformation that transforms a point
// first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Transform(other.Translation),
	}
}

// Inverse returns the inverse of the Affine transformation.
// The result is not finite if the matrix is singular, see TryInverse.
func (a Affine) Inverse() Affine {
	return a.inverseWith(a.Matrix.Inverse())
}

// TryInverse returns the inverse of the Affine transformation if the matrix is not singular.
func (a Affine) TryInverse() (Affine, bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	return a.inverseWith(mat), true
}

func (a Affine) inverseWith(mat Mat) Affine {
	return Affine{
		Matrix:      mat,
		Translation: mat.Transform(a.Translation).Neg(),
	}
}

// rigidTolerance is the deviation from an orthonormal matrix
// that AsTransform still accepts as a pure rotation.
const rigidTolerance = 1e-9

// AsTransform returns the rigid transform equivalent to a. This fails if the
// matrix scales, shears or mirrors, as a Transform can only rotate.
func (a Affine) AsTransform() (Transform, bool) {
	m := a.Matrix

	// a rotation matrix has the form [cos -sin; sin cos] with cos²+sin² = 1
	isRotation := math.Abs(m.XAxis.X-m.YAxis.Y) <= rigidTolerance &&
		math.Abs(m.XAxis.Y+m.YAxis.X) <= rigidTolerance &&
		math.Abs(m.Determinant()-1) <= rigidTolerance

	if !isRotation {
		return Transform{}, false
	}

	angle := Rad(math.Atan2(m.YAxis.X, m.XAxis.X))
	return TransformOf(RotationOf(angle), a.Translation), true
}
