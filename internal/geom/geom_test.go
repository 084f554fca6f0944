package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/units"
)

func TestPoint2DWithZ(t *testing.T) {
	p := Point2D{X: 1, Y: 2}.WithZ(3)
	assert.Equal(t, Point3D{X: 1, Y: 2, Z: 3}, p)
	assert.Equal(t, p, From2D(Point2D{X: 1, Y: 2}, 3))
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, Point3D{X: 1, Y: 2, Z: 3}.Validate())
	assert.Error(t, Point3D{X: math.NaN()}.Validate())
	assert.Error(t, Point2D{Y: math.Inf(-1)}.Validate())
	assert.Error(t, Point4D{W: math.Inf(1)}.Validate())
}

func TestColorValidate(t *testing.T) {
	assert.NoError(t, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}.Validate())
	assert.Error(t, Color{R: 1.5}.Validate())
	assert.Error(t, Color{B: -0.1}.Validate())
	assert.Error(t, Color{A: math.NaN()}.Validate())
}

func TestQuaternionIdentity(t *testing.T) {
	id := Identity()
	assert.Equal(t, Quaternion{W: 1}, id)
	require.NoError(t, id.Validate())

	q := FromEuler(units.FromDegrees(30), units.FromDegrees(45), units.FromDegrees(60))
	assert.InDelta(t, q.X, id.Mul(q).X, 1e-12)
	assert.InDelta(t, q.W, q.Mul(id).W, 1e-12)
}

func TestQuaternionMulRenormalizes(t *testing.T) {
	q := FromEuler(units.FromDegrees(10), units.FromDegrees(20), units.FromDegrees(30))

	// Repeated composition must not drift from unit length.
	acc := Identity()
	for i := 0; i < 1000; i++ {
		acc = acc.Mul(q)
	}
	require.NoError(t, acc.Validate())
}

func TestQuaternionMulNotCommutative(t *testing.T) {
	a := FromEuler(units.FromDegrees(90), units.FromDegrees(0), units.FromDegrees(0))
	b := FromEuler(units.FromDegrees(0), units.FromDegrees(90), units.FromDegrees(0))

	ab := a.Mul(b)
	ba := b.Mul(a)
	assert.NotEqual(t, ab, ba)
}

func TestQuaternionMulAssociative(t *testing.T) {
	a := FromEuler(units.FromDegrees(10), units.FromDegrees(0), units.FromDegrees(0))
	b := FromEuler(units.FromDegrees(0), units.FromDegrees(20), units.FromDegrees(0))
	c := FromEuler(units.FromDegrees(0), units.FromDegrees(0), units.FromDegrees(30))

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	assert.InDelta(t, left.X, right.X, 1e-12)
	assert.InDelta(t, left.Y, right.Y, 1e-12)
	assert.InDelta(t, left.Z, right.Z, 1e-12)
	assert.InDelta(t, left.W, right.W, 1e-12)
}

func TestQuaternionNormalizeZero(t *testing.T) {
	assert.Equal(t, Identity(), Quaternion{}.Normalize())
}

func TestQuaternionValidateRejectsNonUnit(t *testing.T) {
	assert.Error(t, Quaternion{X: 1, Y: 1, Z: 1, W: 1}.Validate())
	assert.NoError(t, Quaternion{X: 1, Y: 1, Z: 1, W: 1}.Normalize().Validate())
}
