package units

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertLength(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		to   Unit
		want float64
	}{
		{"mm to m", Mm(1500), Meters, 1.5},
		{"m to mm", NewValue(2, Meters), Millimeters, 2000},
		{"in to mm", NewValue(1, Inches), Millimeters, 25.4},
		{"ft to in", NewValue(1, Feet), Inches, 12},
		{"yd to ft", NewValue(1, Yards), Feet, 3},
		{"same unit", Mm(42), Millimeters, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Convert(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Unit)
			assert.InDelta(t, tt.want, got.Magnitude, 1e-9)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	orig := Mm(123.456)

	m, err := orig.Convert(Meters)
	require.NoError(t, err)

	back, err := m.Convert(Millimeters)
	require.NoError(t, err)

	assert.InDelta(t, orig.Magnitude, back.Magnitude, 1e-9)
	// Source is never mutated.
	assert.Equal(t, 123.456, orig.Magnitude)
	assert.Equal(t, Millimeters, orig.Unit)
}

func TestConvertKindMismatch(t *testing.T) {
	_, err := Mm(10).Convert(Degrees)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, Millimeters, mismatch.From)
	assert.Equal(t, Degrees, mismatch.To)

	_, err = Deg(90).Convert(Meters)
	require.ErrorAs(t, err, &mismatch)
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := NewValue(1, Unit("furlongs")).Convert(Meters)
	assert.Error(t, err)

	_, err = Mm(1).Convert(Unit("parsecs"))
	assert.Error(t, err)
}

func TestValueValidate(t *testing.T) {
	assert.NoError(t, Mm(0).Validate())
	assert.Error(t, NewValue(1, Unit("bogus")).Validate())
	assert.Error(t, Mm(math.NaN()).Validate())
	assert.Error(t, Mm(math.Inf(1)).Validate())
}

func TestUnitUnmarshalRejectsUnknown(t *testing.T) {
	var u Unit
	require.NoError(t, json.Unmarshal([]byte(`"mm"`), &u))
	assert.Equal(t, Millimeters, u)

	err := json.Unmarshal([]byte(`"lightyears"`), &u)
	assert.Error(t, err)
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, FromDegrees(180).ToRadians(), 1e-12)
	assert.InDelta(t, 180.0, FromRadians(math.Pi).ToDegrees(), 1e-12)
	assert.InDelta(t, 90.0, QuarterCircle().ToDegrees(), 1e-12)
	assert.InDelta(t, 360.0, Turn().ToDegrees(), 1e-12)
}

func TestAngleAdd(t *testing.T) {
	sum := FromDegrees(90).Add(FromRadians(math.Pi))
	assert.Equal(t, Degrees, sum.Unit)
	assert.InDelta(t, 270.0, sum.Value, 1e-9)

	sum = FromRadians(math.Pi / 2).Add(FromDegrees(90))
	assert.Equal(t, Radians, sum.Unit)
	assert.InDelta(t, math.Pi, sum.Value, 1e-12)
}

func TestAngleValidate(t *testing.T) {
	assert.NoError(t, FromDegrees(45).Validate())
	assert.Error(t, Angle{Unit: Meters, Value: 1}.Validate())
}

func TestAngleConversionPanicsOnNonAngleUnit(t *testing.T) {
	bad := Angle{Unit: Meters, Value: 1}
	assert.Panics(t, func() { bad.ToDegrees() })
	assert.Panics(t, func() { bad.ToRadians() })
	assert.Panics(t, func() { bad.Add(FromDegrees(1)) })
}
