// Package frametf implements a time-indexed frame-graph of rigid-body
// coordinate transforms. Frames form a tree; direct edges carry
// parent→child transform samples over time; indirect queries are answered
// by composing edges along the unique tree path and interpolating
// temporally between samples.
package frametf

import (
	"example.com/frametf/quat"
	"example.com/frametf/r3"
	"example.com/frametf/tstamp"
)

// Transform is a rigid-body mapping from Child's frame to Parent's frame,
// valid at Timestamp: applying it to a point expressed in Child yields the
// same point expressed in Parent.
type Transform struct {
	Translation r3.Vec
	Rotation    quat.Number
	Timestamp   tstamp.Timestamp
	Parent      string
	Child       string
}

// Identity returns the identity transform from frame to itself at t.
func Identity(frame string, t tstamp.Timestamp) Transform {
	return Transform{Rotation: quat.Identity, Timestamp: t, Parent: frame, Child: frame}
}

// Compose returns a·b, the transform from b.Child's frame to a.Parent's
// frame. It requires a.Child == b.Parent; otherwise it returns a
// FrameMismatch error. The result's timestamp is a's.
func Compose(a, b Transform) (Transform, error) {
	if a.Child != b.Parent {
		return Transform{}, newError(FrameMismatch, b.Parent,
			"compose: "+a.Child+" != "+b.Parent)
	}
	return Transform{
		Translation: a.Translation.Add(quat.Rotate(a.Rotation, b.Translation)),
		Rotation:    quat.Mul(a.Rotation, b.Rotation),
		Timestamp:   a.Timestamp,
		Parent:      a.Parent,
		Child:       b.Child,
	}, nil
}

// Inverse returns the transform from Parent's frame to Child's frame:
// parent and child swap, translation is negated-and-rotated, rotation is
// conjugated.
func (t Transform) Inverse() Transform {
	inv := quat.Conj(t.Rotation)
	return Transform{
		Translation: quat.Rotate(inv, t.Translation.Scale(-1)),
		Rotation:    inv,
		Timestamp:   t.Timestamp,
		Parent:      t.Child,
		Child:       t.Parent,
	}
}

// Interpolate returns the transform between t0 (valid at time0) and t1
// (valid at time1) at time tq, which must satisfy time0 <= tq <= time1 and
// t0.Parent == t1.Parent, t0.Child == t1.Child. Translation is linearly
// interpolated, rotation is SLERPed. alpha is zero when time0 == time1.
func Interpolate(t0 Transform, time0 tstamp.Timestamp, t1 Transform, time1 tstamp.Timestamp, tq tstamp.Timestamp) Transform {
	var alpha float64
	if time1.After(time0) {
		alpha = float64(tq.Sub(time0)) / float64(time1.Sub(time0))
	}
	return Transform{
		Translation: r3.Lerp(t0.Translation, t1.Translation, alpha),
		Rotation:    quat.Slerp(t0.Rotation, t1.Rotation, alpha),
		Timestamp:   tq,
		Parent:      t0.Parent,
		Child:       t0.Child,
	}
}

// AlmostEqual reports whether t and u agree in parent, child, translation
// (within transTol), and rotation (within rotTol, compared as the angle
// between the two unit quaternions via their dot product).
func (t Transform) AlmostEqual(u Transform, transTol, rotTol float64) bool {
	if t.Parent != u.Parent || t.Child != u.Child {
		return false
	}
	if !t.Translation.AlmostEqual(u.Translation, transTol) {
		return false
	}
	return quat.AngleBetween(t.Rotation, u.Rotation) <= rotTol
}
