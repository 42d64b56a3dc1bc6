package quat

import "math"

// nearParallelTol is the dot-product-from-unity threshold below which two
// unit quaternions are considered near-identical enough that spherical
// interpolation is ill-conditioned and falls back to a linear one.
const nearParallelTol = 1e-6

// Slerp returns the spherical linear interpolation between the unit
// quaternions q0 and q1 at fraction alpha, taking the shorter of the two
// arcs between them. The result is renormalized before it is returned.
func Slerp(q0, q1 Number, alpha float64) Number {
	d := dot(q0, q1)
	if d < 0 {
		q1 = Scale(-1, q1)
		d = -d
	}

	if d > 1-nearParallelTol {
		return Unit(Add(q0, Scale(alpha, Sub(q1, q0))))
	}

	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	s0 := math.Sin((1-alpha)*theta) / sinTheta
	s1 := math.Sin(alpha*theta) / sinTheta
	return Unit(Add(Scale(s0, q0), Scale(s1, q1)))
}

func dot(x, y Number) float64 {
	return x.Real*y.Real + x.Imag*y.Imag + x.Jmag*y.Jmag + x.Kmag*y.Kmag
}

// AngleBetween returns the angle in radians between two unit quaternions,
// taking the shorter of the two arcs (the result is in [0, pi]).
func AngleBetween(q0, q1 Number) float64 {
	d := dot(q0, q1)
	if d < 0 {
		d = -d
	}
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}
