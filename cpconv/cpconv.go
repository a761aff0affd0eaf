// Package cpconv connects gm transforms with chipmunk2d rigid bodies.
package cpconv

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/se2/gm"
)

func VecToCp(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func VecFromCp(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// TransformToCp returns the rigid chipmunk transform matching t.
func TransformToCp(t gm.Transform) cp.Transform {
	return cp.NewTransformRigid(VecToCp(t.Translation), t.Angle().Radians())
}

// TransformFromBody reads position and angle of the body. Chipmunk does not
// wrap the angle of a body, the result is normalized.
func TransformFromBody(body *cp.Body) gm.Transform {
	return gm.TransformOf(
		gm.RotationOf(gm.Rad(body.Angle())),
		VecFromCp(body.Position()),
	)
}

// ApplyToBody moves the body to the pose described by t.
func ApplyToBody(body *cp.Body, t gm.Transform) {
	body.SetPosition(VecToCp(t.Translation))
	body.SetAngle(t.Angle().Radians())
}
