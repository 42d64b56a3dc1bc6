// Package r3 provides a 3D vector type and the handful of operations a
// rigid-body transform needs: addition, scaling, and linear interpolation.
package r3

import "fmt"

// Vec is a 3D vector of float64 components.
type Vec struct {
	X, Y, Z float64
}

// Add returns the vector sum of p and q.
func (p Vec) Add(q Vec) Vec {
	return Vec{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the vector sum of p and -q.
func (p Vec) Sub(q Vec) Vec {
	return Vec{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by f.
func (p Vec) Scale(f float64) Vec {
	return Vec{p.X * f, p.Y * f, p.Z * f}
}

// Dot returns the dot product of p and q.
func (p Vec) Dot(q Vec) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Lerp returns the linear interpolation between p and q at fraction alpha.
// alpha is not clamped to [0,1]; values outside that range extrapolate.
func Lerp(p, q Vec, alpha float64) Vec {
	return p.Add(q.Sub(p).Scale(alpha))
}

// AlmostEqual reports whether p and q are equal to within tol in each
// component.
func (p Vec) AlmostEqual(q Vec, tol float64) bool {
	return absDiff(p.X, q.X) <= tol && absDiff(p.Y, q.Y) <= tol && absDiff(p.Z, q.Z) <= tol
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// Format implements fmt.Formatter so Vec prints like gonum's numeric types.
func (p Vec) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 'g', 'G', 'f', 'F', 'e', 'E':
		fmt.Fprintf(fs, "{%v, %v, %v}", p.X, p.Y, p.Z)
	default:
		fmt.Fprintf(fs, "%%!%c(r3.Vec=%v)", c, [3]float64{p.X, p.Y, p.Z})
	}
}
