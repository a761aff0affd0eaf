package msgconv

import (
	"time"

	"github.com/oliverbestmann/se2/geometrymsgs"
)

// Stamped pairs a value with the time it was observed at and the
// frame it is expressed in.
type Stamped[T any] struct {
	Value   T
	Stamp   time.Time
	FrameID string
}

func StampedOf[T any](value T, stamp time.Time, frameID string) Stamped[T] {
	return Stamped[T]{Value: value, Stamp: stamp, FrameID: frameID}
}

func (s Stamped[T]) header() geometrymsgs.Header {
	return geometrymsgs.Header{Stamp: geometrymsgs.TimeOf(s.Stamp), FrameID: s.FrameID}
}

func stampedFromHeader[T any](header geometrymsgs.Header, value T) Stamped[T] {
	return Stamped[T]{Value: value, Stamp: header.Stamp.Time(), FrameID: header.FrameID}
}
