package units

import "fmt"

// Angle is an angular measurement with an explicit unit.
//
// Angle mirrors Value but keeps the original field layout used by the
// engine protocol (unit first, then the scalar), and offers the common
// degree/radian conversions directly.
type Angle struct {
	// Unit the angle is measured in. Must be an angle-kind unit.
	Unit Unit `json:"unit"`
	// Value is the size of the angle in the chosen unit.
	Value float64 `json:"value"`
}

// FromDegrees creates an angle measured in degrees.
func FromDegrees(v float64) Angle {
	return Angle{Unit: Degrees, Value: v}
}

// FromRadians creates an angle measured in radians.
func FromRadians(v float64) Angle {
	return Angle{Unit: Radians, Value: v}
}

// Turn is a full revolution, 360 degrees.
func Turn() Angle { return FromDegrees(360) }

// HalfCircle is 180 degrees.
func HalfCircle() Angle { return FromDegrees(180) }

// QuarterCircle is 90 degrees.
func QuarterCircle() Angle { return FromDegrees(90) }

// ToDegrees returns the angle's size in degrees.
//
// An Angle carrying a non-angle unit is a programming error; ToDegrees
// panics on one rather than returning a wrong value. Use Validate to
// check untrusted input first.
func (a Angle) ToDegrees() float64 {
	return a.convert(Degrees)
}

// ToRadians returns the angle's size in radians. Panics on a non-angle
// unit, like ToDegrees.
func (a Angle) ToRadians() float64 {
	return a.convert(Radians)
}

func (a Angle) convert(to Unit) float64 {
	v, err := Value{Magnitude: a.Value, Unit: a.Unit}.Convert(to)
	if err != nil {
		panic(err)
	}
	return v.Magnitude
}

// Add returns the sum of two angles, expressed in the receiver's unit.
func (a Angle) Add(b Angle) Angle {
	switch a.Unit {
	case Radians:
		return Angle{Unit: Radians, Value: a.ToRadians() + b.ToRadians()}
	default:
		return Angle{Unit: Degrees, Value: a.ToDegrees() + b.ToDegrees()}
	}
}

// Validate checks the angle has an angle-kind unit and a finite value.
func (a Angle) Validate() error {
	if a.Unit.Kind() != KindAngle {
		return fmt.Errorf("angle requires an angle unit, got %q", a.Unit)
	}
	return Value{Magnitude: a.Value, Unit: a.Unit}.Validate()
}
