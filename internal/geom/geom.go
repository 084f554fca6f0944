// Package geom provides the geometric primitives carried by modeling
// commands: points in 2, 3 and 4 dimensions, orientations as unit
// quaternions, and RGBA colors.
//
// All scalar components are float64 and round-trip exactly through the
// wire codec. Quaternions are renormalized after every composition so
// repeated orientation math cannot drift away from unit length.
package geom

import (
	"fmt"
	"math"

	"github.com/chiselcad/chisel/internal/units"
)

// Point2D is a point in 2D space.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WithZ lifts a 2D point into 3D with the given z component.
func (p Point2D) WithZ(z float64) Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: z}
}

// Point3D is a point in 3D space.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// From2D builds a 3D point from a 2D point plus a z component.
func From2D(p Point2D, z float64) Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: z}
}

// Point4D is a point in homogeneous (4D) space.
type Point4D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Validate rejects non-finite components. Shared by every point type.
func finite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("component must be finite, got %v", v)
		}
	}
	return nil
}

// Validate checks all components are finite.
func (p Point2D) Validate() error { return finite(p.X, p.Y) }

// Validate checks all components are finite.
func (p Point3D) Validate() error { return finite(p.X, p.Y, p.Z) }

// Validate checks all components are finite.
func (p Point4D) Validate() error { return finite(p.X, p.Y, p.Z, p.W) }

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Validate checks every channel is within [0, 1].
func (c Color) Validate() error {
	for _, ch := range []struct {
		name string
		v    float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}} {
		if math.IsNaN(ch.v) || ch.v < 0 || ch.v > 1 {
			return fmt.Errorf("color channel %s must be in [0, 1], got %v", ch.name, ch.v)
		}
	}
	return nil
}

// Quaternion is an orientation in 3D space. The identity orientation is
// (0, 0, 0, 1). Composition via Mul renormalizes the result, so a
// quaternion that started at unit length stays there.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Identity returns the no-rotation orientation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// Normalize returns the quaternion scaled to unit length.
// A zero quaternion normalizes to the identity rather than NaN.
func (q Quaternion) Normalize() Quaternion {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return Identity()
	}
	return Quaternion{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// Mul composes two orientations: the result applies r first, then q.
// Composition is associative but not commutative. The product is always
// renormalized.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	out := Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
	return out.Normalize()
}

// FromEuler builds an orientation from intrinsic x-y-z Euler rotations.
func FromEuler(roll, pitch, yaw units.Angle) Quaternion {
	cr := math.Cos(roll.ToRadians() / 2)
	sr := math.Sin(roll.ToRadians() / 2)
	cp := math.Cos(pitch.ToRadians() / 2)
	sp := math.Sin(pitch.ToRadians() / 2)
	cy := math.Cos(yaw.ToRadians() / 2)
	sy := math.Sin(yaw.ToRadians() / 2)

	q := Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
	return q.Normalize()
}

// Validate checks components are finite and the quaternion is within
// rounding distance of unit length.
func (q Quaternion) Validate() error {
	if err := finite(q.X, q.Y, q.Z, q.W); err != nil {
		return err
	}
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.Abs(n-1) > 1e-6 {
		return fmt.Errorf("quaternion must be unit length, got norm %v", n)
	}
	return nil
}
