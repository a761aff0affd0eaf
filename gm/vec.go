package gm

import (
	"fmt"
	"math"
)

// Vec is a vector in the plane. Its fields are exported, assigning
// to X or Y is the canonical way of mutating a single component.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v *Vec) SetX(x float64) {
	v.X = x
}

func (v *Vec) SetY(y float64) {
	v.Y = y
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Neg returns the vector pointing in the opposite direction.
func (v Vec) Neg() Vec {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// Div divides both components by the given scalar. Dividing by zero follows
// the usual float semantics and yields infinity or NaN.
func (v Vec) Div(scalar float64) Vec {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Equal compares both components exactly.
func (v Vec) Equal(other Vec) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}
