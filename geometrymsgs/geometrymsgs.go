// Package geometrymsgs mirrors the geometry message types of the robotics
// middleware. Field names follow the middleware's json encoding.
package geometrymsgs

import "time"

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Point32 is a point with single precision coordinates, as used by point clouds and polygons.
type Point32 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

type Pose struct {
	Position    Point      `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// Pose2D is a position and heading in the plane.
type Pose2D struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

type Transform struct {
	Translation Vector3    `json:"translation"`
	Rotation    Quaternion `json:"rotation"`
}

// Time is a point in time as seconds and nanoseconds since the unix epoch.
type Time struct {
	Secs  uint32 `json:"secs"`
	Nsecs uint32 `json:"nsecs"`
}

// TimeOf converts t into a message time. Times before the
// unix epoch can not be represented.
func TimeOf(t time.Time) Time {
	return Time{
		Secs:  uint32(t.Unix()),
		Nsecs: uint32(t.Nanosecond()),
	}
}

// Time returns the message time as a time.Time in UTC.
func (t Time) Time() time.Time {
	return time.Unix(int64(t.Secs), int64(t.Nsecs)).UTC()
}

// Header carries the time of a measurement and the coordinate
// frame the data is expressed in.
type Header struct {
	Stamp   Time   `json:"stamp"`
	FrameID string `json:"frame_id"`
}

type Vector3Stamped struct {
	Header Header  `json:"header"`
	Vector Vector3 `json:"vector"`
}

type PointStamped struct {
	Header Header `json:"header"`
	Point  Point  `json:"point"`
}

type QuaternionStamped struct {
	Header     Header     `json:"header"`
	Quaternion Quaternion `json:"quaternion"`
}

type PoseStamped struct {
	Header Header `json:"header"`
	Pose   Pose   `json:"pose"`
}

// TransformStamped describes the transform from Header.FrameID to ChildFrameID.
type TransformStamped struct {
	Header       Header    `json:"header"`
	ChildFrameID string    `json:"child_frame_id"`
	Transform    Transform `json:"transform"`
}
