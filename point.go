package frametf

import (
	"example.com/frametf/quat"
	"example.com/frametf/r3"
	"example.com/frametf/tstamp"
)

// Transformable is the capability a Transform can act on: given a
// Transform T with T.Parent == the receiver's current frame, re-express
// the receiver in T.Child's frame.
type Transformable interface {
	ApplyTransform(t Transform) error
}

// Point is the reference Transformable: a pose (position and orientation)
// expressed in a named frame at a point in time.
type Point struct {
	Position    r3.Vec
	Orientation quat.Number
	Timestamp   tstamp.Timestamp
	Frame       string
}

// ApplyTransform re-expresses p in t.Child's frame: it requires
// t.Parent == p.Frame and t.Timestamp == p.Timestamp, failing with
// FrameMismatch or TimestampMismatch respectively. On success, p's
// position and orientation are rotated and translated by t, and p.Frame
// becomes t.Child.
func (p *Point) ApplyTransform(t Transform) error {
	if t.Parent != p.Frame {
		return newError(FrameMismatch, p.Frame, "ApplyTransform: transform parent "+t.Parent+" != point frame "+p.Frame)
	}
	if !t.Timestamp.Equal(p.Timestamp) {
		return newError(TimestampMismatch, p.Frame, "ApplyTransform: transform and point timestamps differ")
	}
	p.Position = quat.Rotate(t.Rotation, p.Position).Add(t.Translation)
	p.Orientation = quat.Mul(t.Rotation, p.Orientation)
	p.Frame = t.Child
	return nil
}
