package gm

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transformation in the plane. It maps a point p
// to Rotation.Apply(p) + Translation.
//
// The zero value is the identity transformation.
type Transform struct {
	Rotation    Rotation
	Translation Vec
}

// IdentityTransform returns the transformation that maps every point onto itself.
func IdentityTransform() Transform {
	return Transform{}
}

func TransformOf(rotation Rotation, translation Vec) Transform {
	return Transform{
		Rotation:    rotation,
		Translation: translation,
	}
}

func TransformFromXYAngle(x, y float64, angle Rad) Transform {
	return Transform{
		Rotation:    RotationOf(angle),
		Translation: Vec{X: x, Y: y},
	}
}

// TransformFromPose3 projects a pose in 3d space onto the xy plane.
// The z coordinate as well as roll and pitch of the orientation are dropped,
// only the yaw is kept. The projection is lossy and can not be reversed.
func TransformFromPose3(position mgl64.Vec3, orientation mgl64.Quat) Transform {
	return Transform{
		Rotation:    RotationOf(YawOf(orientation)),
		Translation: Vec{X: position.X(), Y: position.Y()},
	}
}

// YawOf extracts the rotation around the z axis from the given
// quaternion. Any roll or pitch is ignored. The quaternion does not need
// to be of unit length.
//
// With a pitch of ±90° yaw and roll rotate around the same axis. In that
// case the combined rotation is reported as yaw.
func YawOf(q mgl64.Quat) Rad {
	x, y, z := q.V.Elem()

	norm := q.Dot(q)
	sinPitch := -2 * (x*z - q.W*y) / norm

	if math.Abs(sinPitch) >= gimbalLockThreshold {
		return Rad(2 * math.Atan2(z, q.W)).Normalized()
	}

	return Rad(math.Atan2(2*(x*y+q.W*z), q.W*q.W+x*x-y*y-z*z))
}

const gimbalLockThreshold = 0.99999

func (t Transform) X() float64 {
	return t.Translation.X
}

func (t Transform) Y() float64 {
	return t.Translation.Y
}

func (t Transform) Angle() Rad {
	return t.Rotation.Angle()
}

func (t *Transform) SetX(x float64) {
	t.Translation.X = x
}

func (t *Transform) SetY(y float64) {
	t.Translation.Y = y
}

func (t *Transform) SetAngle(angle Rad) {
	t.Rotation.SetAngle(angle)
}

func (t *Transform) SetRotation(rotation Rotation) {
	t.Rotation = rotation
}

func (t *Transform) SetTranslation(translation Vec) {
	t.Translation = translation
}

// SetIdentity resets the transform to the identity transformation.
func (t *Transform) SetIdentity() {
	*t = Transform{}
}

// TransformPoint applies the transformation to the given point.
func (t Transform) TransformPoint(point Vec) Vec {
	return t.Rotation.Apply(point).Add(t.Translation)
}

// TransformVec applies only the rotation to the given vector.
func (t Transform) TransformVec(vec Vec) Vec {
	return t.Rotation.Apply(vec)
}

// Mul composes two transformations. The result transforms a point
// first by other and then by t, i.e. other is interpreted in the
// local frame of t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul(other.Rotation),
		Translation: t.Translation.Add(t.Rotation.Apply(other.Translation)),
	}
}

// Inverse returns the transformation that undoes t.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse()

	return Transform{
		Rotation:    inv,
		Translation: inv.Apply(t.Translation.Neg()),
	}
}

// InverseMul returns the same as t.Inverse().Mul(other): the pose of other
// expressed in the local frame of t.
func (t Transform) InverseMul(other Transform) Transform {
	inv := t.Rotation.Inverse()

	return Transform{
		Rotation:    inv.Mul(other.Rotation),
		Translation: inv.Apply(other.Translation.Sub(t.Translation)),
	}
}

// Lerp interpolates between t and other. The translation is interpolated
// linearly, the rotation along the shortest arc. A ratio of 0 returns t,
// a ratio of 1 returns other. Ratios outside of [0, 1] extrapolate.
func (t Transform) Lerp(other Transform, ratio float64) Transform {
	return Transform{
		Rotation:    RotationOf(LerpAngle(ratio, t.Rotation.Angle(), other.Rotation.Angle())),
		Translation: LerpVec(ratio, t.Translation, other.Translation),
	}
}

// AsAffine returns the transformation as a general affine transform.
func (t Transform) AsAffine() Affine {
	return Affine{
		Matrix:      RotationMat(t.Rotation.Angle()),
		Translation: t.Translation,
	}
}

// Equal compares rotation and translation exactly.
func (t Transform) Equal(other Transform) bool {
	return t.Rotation.Equal(other.Rotation) && t.Translation.Equal(other.Translation)
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform(x=%v, y=%v, angle=%v)",
		t.Translation.X, t.Translation.Y, float64(t.Rotation.Angle()),
	)
}
