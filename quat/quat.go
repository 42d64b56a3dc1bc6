// Package quat provides a unit-quaternion rotation type adapted from
// gonum's num/quat package, extended with the spherical interpolation a
// rigid-body transform needs.
package quat

import (
	"fmt"
	"math"

	"example.com/frametf/r3"
)

// Number is a float64-precision quaternion, Real + Imag*i + Jmag*j + Kmag*k.
// For a rotation quaternion, Real is the scalar (w) part and
// (Imag, Jmag, Kmag) is the vector (x, y, z) part.
type Number struct {
	Real, Imag, Jmag, Kmag float64
}

// Identity is the identity rotation.
var Identity = Number{Real: 1}

// Add returns the sum of x and y.
func Add(x, y Number) Number {
	return Number{
		Real: x.Real + y.Real,
		Imag: x.Imag + y.Imag,
		Jmag: x.Jmag + y.Jmag,
		Kmag: x.Kmag + y.Kmag,
	}
}

// Sub returns the difference of x and y, x-y.
func Sub(x, y Number) Number {
	return Number{
		Real: x.Real - y.Real,
		Imag: x.Imag - y.Imag,
		Jmag: x.Jmag - y.Jmag,
		Kmag: x.Kmag - y.Kmag,
	}
}

// Mul returns the Hamilton product of x and y.
func Mul(x, y Number) Number {
	return Number{
		Real: x.Real*y.Real - x.Imag*y.Imag - x.Jmag*y.Jmag - x.Kmag*y.Kmag,
		Imag: x.Real*y.Imag + x.Imag*y.Real + x.Jmag*y.Kmag - x.Kmag*y.Jmag,
		Jmag: x.Real*y.Jmag - x.Imag*y.Kmag + x.Jmag*y.Real + x.Kmag*y.Imag,
		Kmag: x.Real*y.Kmag + x.Imag*y.Jmag - x.Jmag*y.Imag + x.Kmag*y.Real,
	}
}

// Scale returns q scaled by f.
func Scale(f float64, q Number) Number {
	return Number{Real: f * q.Real, Imag: f * q.Imag, Jmag: f * q.Jmag, Kmag: f * q.Kmag}
}

// Conj returns the conjugate of q.
func Conj(q Number) Number {
	return Number{Real: q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// Norm returns the Euclidean norm of q.
func Norm(q Number) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Unit returns q normalized to unit length. The zero quaternion is
// returned unchanged, since it has no defined direction.
func Unit(q Number) Number {
	n := Norm(q)
	if n == 0 {
		return q
	}
	return Scale(1/n, q)
}

// Inv returns the inverse of q. For a unit quaternion this is equal to
// Conj(q); Inv also handles non-unit quaternions by dividing through by
// the squared norm.
func Inv(q Number) Number {
	n := Norm(q)
	return Scale(1/(n*n), Conj(q))
}

// IsUnit reports whether q's norm is within tol of 1.
func IsUnit(q Number, tol float64) bool {
	return math.Abs(Norm(q)-1) <= tol
}

// Rotate returns p rotated by the unit quaternion q: q·p·q⁻¹.
func Rotate(q Number, p r3.Vec) r3.Vec {
	pq := Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	rq := Mul(Mul(q, pq), Conj(q))
	return r3.Vec{X: rq.Imag, Y: rq.Jmag, Z: rq.Kmag}
}

// Format implements fmt.Formatter, mirroring gonum's quat.Quat.Format.
func (q Number) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 'g', 'G', 'f', 'F', 'e', 'E':
		fmt.Fprintf(fs, "(%v+%vi+%vj+%vk)", q.Real, q.Imag, q.Jmag, q.Kmag)
	default:
		fmt.Fprintf(fs, "%%!%c(quat.Number=%v)", c, [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag})
	}
}
