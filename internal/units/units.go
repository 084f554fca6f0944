package units

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind classifies units into dimensions. Arithmetic and conversion are
// only defined within a single kind.
type Kind string

const (
	// KindLength covers linear distance units.
	KindLength Kind = "length"

	// KindAngle covers angular units.
	KindAngle Kind = "angle"
)

// Unit is a concrete measurement unit. The string form is the stable
// wire representation and must never be repurposed.
type Unit string

// Length units.
const (
	Millimeters Unit = "mm"
	Centimeters Unit = "cm"
	Meters      Unit = "m"
	Inches      Unit = "in"
	Feet        Unit = "ft"
	Yards       Unit = "yd"
)

// Angle units.
const (
	Degrees Unit = "degrees"
	Radians Unit = "radians"
)

// baseFactors maps each unit to its magnitude in the kind's base unit
// (millimeters for length, radians for angle). Conversion goes through
// the base unit, so every pair of compatible units is convertible with
// at most one multiply and one divide.
var baseFactors = map[Unit]float64{
	Millimeters: 1,
	Centimeters: 10,
	Meters:      1000,
	Inches:      25.4,
	Feet:        304.8,
	Yards:       914.4,

	Degrees: math.Pi / 180,
	Radians: 1,
}

var unitKinds = map[Unit]Kind{
	Millimeters: KindLength,
	Centimeters: KindLength,
	Meters:      KindLength,
	Inches:      KindLength,
	Feet:        KindLength,
	Yards:       KindLength,

	Degrees: KindAngle,
	Radians: KindAngle,
}

// Kind returns the dimension this unit measures.
// Returns an empty Kind for unknown units.
func (u Unit) Kind() Kind {
	return unitKinds[u]
}

// Valid reports whether u is a unit known to the protocol.
func (u Unit) Valid() bool {
	_, ok := unitKinds[u]
	return ok
}

// String returns the wire form of the unit.
func (u Unit) String() string { return string(u) }

// UnmarshalJSON decodes a unit and rejects unknown unit names.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Unit(s).Valid() {
		return fmt.Errorf("unknown unit %q", s)
	}
	*u = Unit(s)
	return nil
}

// LengthUnits lists all length units in stable order.
// Used by the schema exporter.
func LengthUnits() []Unit {
	return []Unit{Millimeters, Centimeters, Meters, Inches, Feet, Yards}
}

// AngleUnits lists all angle units in stable order.
func AngleUnits() []Unit {
	return []Unit{Degrees, Radians}
}

// Value is a magnitude tagged with a unit. Values are immutable:
// Convert returns a new Value and never modifies the receiver.
type Value struct {
	Magnitude float64 `json:"magnitude"`
	Unit      Unit    `json:"unit"`
}

// NewValue constructs a Value. Unknown units are caught later by
// Validate and Convert; construction itself never fails.
func NewValue(magnitude float64, unit Unit) Value {
	return Value{Magnitude: magnitude, Unit: unit}
}

// Mm constructs a length value in millimeters.
func Mm(magnitude float64) Value { return NewValue(magnitude, Millimeters) }

// Deg constructs an angle value in degrees.
func Deg(magnitude float64) Value { return NewValue(magnitude, Degrees) }

// Validate checks the value is well-formed: a known unit and a finite
// magnitude. NaN and infinities are not representable on the wire.
func (v Value) Validate() error {
	if !v.Unit.Valid() {
		return fmt.Errorf("unknown unit %q", v.Unit)
	}
	if math.IsNaN(v.Magnitude) || math.IsInf(v.Magnitude, 0) {
		return fmt.Errorf("magnitude must be finite, got %v", v.Magnitude)
	}
	return nil
}

// Convert returns a new Value expressed in the target unit.
// Fails with *MismatchError when the target measures a different kind.
// Converting to the same unit returns the value unchanged.
func (v Value) Convert(to Unit) (Value, error) {
	if !v.Unit.Valid() {
		return Value{}, fmt.Errorf("unknown source unit %q", v.Unit)
	}
	if !to.Valid() {
		return Value{}, fmt.Errorf("unknown target unit %q", to)
	}
	if v.Unit.Kind() != to.Kind() {
		return Value{}, &MismatchError{From: v.Unit, To: to}
	}
	if v.Unit == to {
		return v, nil
	}
	base := v.Magnitude * baseFactors[v.Unit]
	return Value{Magnitude: base / baseFactors[to], Unit: to}, nil
}

// MismatchError reports a conversion between incompatible unit kinds.
type MismatchError struct {
	From Unit
	To   Unit
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		e.From, e.From.Kind(), e.To, e.To.Kind())
}
