package msgconv

import (
	"github.com/oliverbestmann/se2/geometrymsgs"
	"github.com/oliverbestmann/se2/gm"
)

func ToVector3Stamped(v Stamped[gm.Vec]) geometrymsgs.Vector3Stamped {
	return geometrymsgs.Vector3Stamped{
		Header: v.header(),
		Vector: VecToVector3(v.Value),
	}
}

func FromVector3Stamped(msg geometrymsgs.Vector3Stamped) Stamped[gm.Vec] {
	return stampedFromHeader(msg.Header, VecFromVector3(msg.Vector))
}

func ToPointStamped(v Stamped[gm.Vec]) geometrymsgs.PointStamped {
	return geometrymsgs.PointStamped{
		Header: v.header(),
		Point:  VecToPoint(v.Value),
	}
}

func FromPointStamped(msg geometrymsgs.PointStamped) Stamped[gm.Vec] {
	return stampedFromHeader(msg.Header, VecFromPoint(msg.Point))
}

func ToQuaternionStamped(r Stamped[gm.Rotation]) geometrymsgs.QuaternionStamped {
	return geometrymsgs.QuaternionStamped{
		Header:     r.header(),
		Quaternion: RotationToQuaternion(r.Value),
	}
}

func FromQuaternionStamped(msg geometrymsgs.QuaternionStamped) Stamped[gm.Rotation] {
	return stampedFromHeader(msg.Header, RotationFromQuaternion(msg.Quaternion))
}

func ToPoseStamped(t Stamped[gm.Transform]) geometrymsgs.PoseStamped {
	return geometrymsgs.PoseStamped{
		Header: t.header(),
		Pose:   TransformToPose(t.Value),
	}
}

func FromPoseStamped(msg geometrymsgs.PoseStamped) Stamped[gm.Transform] {
	return stampedFromHeader(msg.Header, TransformFromPose(msg.Pose))
}

// ToTransformStamped encodes a transform from the frame of t into childFrameID.
func ToTransformStamped(t Stamped[gm.Transform], childFrameID string) geometrymsgs.TransformStamped {
	return geometrymsgs.TransformStamped{
		Header:       t.header(),
		ChildFrameID: childFrameID,
		Transform:    TransformToMsg(t.Value),
	}
}

// FromTransformStamped decodes the transform and returns the child frame id alongside.
func FromTransformStamped(msg geometrymsgs.TransformStamped) (t Stamped[gm.Transform], childFrameID string) {
	return stampedFromHeader(msg.Header, TransformFromMsg(msg.Transform)), msg.ChildFrameID
}
