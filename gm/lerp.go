package gm

// Lerper does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
//
// Use an easing function to calculate f to perform
// custom interpolations between the values
type Lerper[T any] func(f float64, lhs, rhs T) T

var _ Lerper[Transform] = LerpTransform

func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}

func LerpVec(f float64, lhs, rhs Vec) Vec {
	return lhs.Add(rhs.Sub(lhs).Mul(f))
}

// LerpAngle interpolates along the shortest arc between both angles.
// The result is not normalized.
func LerpAngle(f float64, lhs, rhs Rad) Rad {
	d := lhs.DifferenceTo(rhs)
	return lhs + Rad(f)*d
}

func LerpTransform(f float64, lhs, rhs Transform) Transform {
	return lhs.Lerp(rhs, f)
}
