package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S ~float32 | ~float64](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return RandomIn[Rad](-math.Pi, math.Pi)
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec() Vec {
	for {
		v := Vec{
			X: RandomIn(-1.0, 1.0),
			Y: RandomIn(-1.0, 1.0),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomTransform returns a transform with a random rotation and a translation
// within a circle of the given radius.
func RandomTransform(radius float64) Transform {
	return Transform{
		Rotation:    RotationOf(RandomAngle()),
		Translation: RandomVec().Mul(radius),
	}
}
