package gm

import "math"

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range (-π, π].
// Angles already within that range are returned unchanged.
func (r Rad) Normalized() Rad {
	angle := float64(r)
	if angle > -math.Pi && angle <= math.Pi {
		return r
	}

	angle = math.Atan2(math.Sin(angle), math.Cos(angle))

	// atan2 may return -π, which is not part of the canonical range
	if angle <= -math.Pi {
		angle = math.Pi
	}

	return Rad(angle)
}

// DifferenceTo returns the signed shortest rotation that takes r to other,
// normalized to the range (-π, π].
func (r Rad) DifferenceTo(other Rad) Rad {
	return (other - r).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

// Sincos returns the sine and cosine of the angle.
func (r Rad) Sincos() (sin, cos float64) {
	return math.Sincos(float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
