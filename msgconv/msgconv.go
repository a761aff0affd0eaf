// Package msgconv converts between the gm value types and the
// middleware's geometry messages.
//
// Converting from 3d messages is lossy: z coordinates as well as
// roll and pitch of orientations are dropped without notice.
package msgconv

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/se2/geometrymsgs"
	"github.com/oliverbestmann/se2/gm"
)

func VecToVector3(v gm.Vec) geometrymsgs.Vector3 {
	return geometrymsgs.Vector3{X: v.X, Y: v.Y}
}

func VecFromVector3(msg geometrymsgs.Vector3) gm.Vec {
	return gm.Vec{X: msg.X, Y: msg.Y}
}

func VecToPoint(v gm.Vec) geometrymsgs.Point {
	return geometrymsgs.Point{X: v.X, Y: v.Y}
}

func VecFromPoint(msg geometrymsgs.Point) gm.Vec {
	return gm.Vec{X: msg.X, Y: msg.Y}
}

// VecFromPoint32 converts a single precision point, z is discarded.
func VecFromPoint32(msg geometrymsgs.Point32) gm.Vec {
	return gm.Vec{X: float64(msg.X), Y: float64(msg.Y)}
}

// RotationToQuaternion returns a quaternion describing a pure rotation around the z axis.
func RotationToQuaternion(r gm.Rotation) geometrymsgs.Quaternion {
	half := r.Angle().Radians() / 2

	return geometrymsgs.Quaternion{
		Z: math.Sin(half),
		W: math.Cos(half),
	}
}

// RotationFromQuaternion keeps only the yaw of the given quaternion.
func RotationFromQuaternion(msg geometrymsgs.Quaternion) gm.Rotation {
	return gm.RotationOf(gm.YawOf(quat(msg)))
}

func quat(msg geometrymsgs.Quaternion) mgl64.Quat {
	return mgl64.Quat{W: msg.W, V: mgl64.Vec3{msg.X, msg.Y, msg.Z}}
}

func TransformToMsg(t gm.Transform) geometrymsgs.Transform {
	return geometrymsgs.Transform{
		Translation: VecToVector3(t.Translation),
		Rotation:    RotationToQuaternion(t.Rotation),
	}
}

func TransformFromMsg(msg geometrymsgs.Transform) gm.Transform {
	return gm.TransformFromPose3(
		mgl64.Vec3{msg.Translation.X, msg.Translation.Y, msg.Translation.Z},
		quat(msg.Rotation),
	)
}

func TransformToPose(t gm.Transform) geometrymsgs.Pose {
	return geometrymsgs.Pose{
		Position:    VecToPoint(t.Translation),
		Orientation: RotationToQuaternion(t.Rotation),
	}
}

func TransformFromPose(msg geometrymsgs.Pose) gm.Transform {
	return gm.TransformFromPose3(
		mgl64.Vec3{msg.Position.X, msg.Position.Y, msg.Position.Z},
		quat(msg.Orientation),
	)
}

func TransformToPose2D(t gm.Transform) geometrymsgs.Pose2D {
	return geometrymsgs.Pose2D{
		X:     t.X(),
		Y:     t.Y(),
		Theta: t.Angle().Radians(),
	}
}

func TransformFromPose2D(msg geometrymsgs.Pose2D) gm.Transform {
	return gm.TransformFromXYAngle(msg.X, msg.Y, gm.Rad(msg.Theta))
}
