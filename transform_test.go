package frametf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"example.com/frametf/quat"
	"example.com/frametf/r3"
	"example.com/frametf/tstamp"
)

func rotZ(theta float64) quat.Number {
	return quat.Number{Real: math.Cos(theta / 2), Kmag: math.Sin(theta / 2)}
}

func TestComposeRequiresMatchingFrames(t *testing.T) {
	a := Transform{Rotation: quat.Identity, Parent: "b", Child: "a"}
	b := Transform{Rotation: quat.Identity, Parent: "x", Child: "y"}
	if _, err := Compose(a, b); err == nil {
		t.Fatal("Compose across mismatched frames: got nil error, want FrameMismatch")
	}
}

func TestComposeIdentity(t *testing.T) {
	a := Transform{
		Translation: r3.Vec{X: 1, Y: 2, Z: 3},
		Rotation:    rotZ(math.Pi / 2),
		Parent:      "map",
		Child:       "base",
	}
	id := Identity("base", tstamp.Zero())
	got, err := Compose(a, id)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !got.AlmostEqual(a, 1e-9, 1e-9) {
		t.Errorf("Compose(a, identity) = %+v, want %+v", got, a)
	}
}

func TestInverseIsInvolution(t *testing.T) {
	a := Transform{
		Translation: r3.Vec{X: 1, Y: -2, Z: 0.5},
		Rotation:    rotZ(1.2),
		Parent:      "map",
		Child:       "base",
	}
	roundTrip := a.Inverse().Inverse()
	if !roundTrip.AlmostEqual(a, 1e-9, 1e-9) {
		t.Errorf("a.Inverse().Inverse() = %+v, want %+v", roundTrip, a)
	}
}

func TestComposeWithInverseIsIdentity(t *testing.T) {
	a := Transform{
		Translation: r3.Vec{X: 3, Y: 0, Z: 0},
		Rotation:    rotZ(math.Pi / 3),
		Parent:      "map",
		Child:       "base",
	}
	composed, err := Compose(a, a.Inverse())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if composed.Parent != "map" || composed.Child != "map" {
		t.Errorf("frames = %q,%q, want map,map", composed.Parent, composed.Child)
	}
	if !composed.Translation.AlmostEqual(r3.Vec{}, 1e-9) {
		t.Errorf("translation = %+v, want zero", composed.Translation)
	}
	if !floats.EqualWithinAbs(quat.Norm(composed.Rotation), 1, 1e-9) {
		t.Errorf("|composed.Rotation| = %v, want 1", quat.Norm(composed.Rotation))
	}
}

func TestInterpolateBoundaries(t *testing.T) {
	t0 := Transform{Translation: r3.Vec{X: 0}, Rotation: quat.Identity, Parent: "b", Child: "a"}
	t1 := Transform{Translation: r3.Vec{X: 2}, Rotation: rotZ(math.Pi), Parent: "b", Child: "a"}
	time0 := tstamp.FromUnixNano(10)
	time1 := tstamp.FromUnixNano(20)

	got0 := Interpolate(t0, time0, t1, time1, time0)
	if got0.Translation != t0.Translation {
		t.Errorf("Interpolate at time0 = %+v, want %+v", got0.Translation, t0.Translation)
	}
	got1 := Interpolate(t0, time0, t1, time1, time1)
	if got1.Translation != t1.Translation {
		t.Errorf("Interpolate at time1 = %+v, want %+v", got1.Translation, t1.Translation)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	t0 := Transform{Translation: r3.Vec{X: 0}, Rotation: quat.Identity, Parent: "b", Child: "a"}
	t1 := Transform{Translation: r3.Vec{X: 2}, Rotation: rotZ(math.Pi), Parent: "b", Child: "a"}
	mid := Interpolate(t0, tstamp.FromUnixNano(0), t1, tstamp.FromUnixNano(2), tstamp.FromUnixNano(1))

	if !floats.EqualWithinAbs(mid.Translation.X, 1, 1e-12) {
		t.Errorf("mid.Translation.X = %v, want 1", mid.Translation.X)
	}
	wantAngle := math.Pi / 2
	gotAngle := quat.AngleBetween(mid.Rotation, rotZ(wantAngle))
	if !floats.EqualWithinAbs(gotAngle, 0, 1e-9) {
		t.Errorf("mid rotation differs from rotZ(pi/2) by %v rad", gotAngle)
	}
}
