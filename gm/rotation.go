package gm

import "fmt"

// Rotation is a rotation in the plane. The angle is always kept in the
// canonical range (-π, π], so two rotations describing the same orientation
// compare equal.
//
// The zero value is the identity rotation.
type Rotation struct {
	angle Rad
}

// RotationOf returns a rotation by the given angle. The angle may
// describe any number of full turns, it is normalized.
func RotationOf(angle Rad) Rotation {
	return Rotation{angle: angle.Normalized()}
}

// Angle returns the normalized angle of the rotation.
func (r Rotation) Angle() Rad {
	return r.angle
}

func (r *Rotation) SetAngle(angle Rad) {
	r.angle = angle.Normalized()
}

func (r Rotation) Sin() float64 {
	return r.angle.Sin()
}

func (r Rotation) Cos() float64 {
	return r.angle.Cos()
}

// Mul returns the rotation that first rotates by other and then by r.
func (r Rotation) Mul(other Rotation) Rotation {
	return RotationOf(r.angle + other.angle)
}

// Inverse returns the rotation that undoes r. A rotation by π is its own inverse.
func (r Rotation) Inverse() Rotation {
	return RotationOf(-r.angle)
}

// Apply rotates the given vector counterclockwise by the rotations angle.
func (r Rotation) Apply(v Vec) Vec {
	sin, cos := r.angle.Sincos()

	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Equal compares the normalized angles exactly.
func (r Rotation) Equal(other Rotation) bool {
	return r.angle == other.angle
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation(angle=%v)", float64(r.angle))
}
