// Package gm (stands for geometry math) provides rigid body geometry in the plane.
//
// It includes a simple 2d vector type called Vec, a Rotation that keeps its
// angle in the canonical range (-π, π] and a rigid Transform composed of
// both. Transforms compose with Mul, invert with Inverse and interpolate
// with Lerp.
//
// The general 2d matrix type Mat and the affine transform Affine are
// available for transformations that also scale.
//
// There is also a type named Rad to represent angle values in radian.
package gm
