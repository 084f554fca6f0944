package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/plan"
)

const widgetSequence = `
name: widget
steps:
  - bind: depth
    value: 10.0
  - bind: sketch
    cmd:
      type: start_path
  - cmd:
      type: extrude
      target: {ref: sketch}
      distance: {magnitude: 5.5, unit: mm}
      cap: true
`

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence([]byte(widgetSequence))
	require.NoError(t, err)
	assert.Equal(t, "widget", seq.Name)
	require.Len(t, seq.Steps, 3)

	value, ok := seq.Steps[0].(plan.ValueStep)
	require.True(t, ok)
	assert.Equal(t, "depth", value.Bind)
	assert.Equal(t, 10.0, value.Value)

	cmdStep, ok := seq.Steps[1].(plan.CommandStep)
	require.True(t, ok)
	assert.Equal(t, "sketch", cmdStep.Bind)
	assert.Equal(t, cmds.StartPath{}, cmdStep.Cmd)

	extrudeStep, ok := seq.Steps[2].(plan.CommandStep)
	require.True(t, ok)
	assert.Empty(t, extrudeStep.Bind)
	extrude, ok := extrudeStep.Cmd.(cmds.Extrude)
	require.True(t, ok)
	assert.Equal(t, cmds.Ref("sketch"), extrude.Target)
	assert.Equal(t, 5.5, extrude.Distance.Magnitude)
	assert.True(t, extrude.Cap)
}

func TestParseSequenceCompute(t *testing.T) {
	data := `
name: doubled
steps:
  - bind: depth
    value: 4.0
  - bind: total
    compute:
      op: mul
      lhs: {ref: depth}
      rhs: {literal: 2.0}
`
	seq, err := ParseSequence([]byte(data))
	require.NoError(t, err)
	require.Len(t, seq.Steps, 2)

	compute, ok := seq.Steps[1].(plan.ComputeStep)
	require.True(t, ok)
	assert.Equal(t, plan.OpMul, compute.Op)
	assert.Equal(t, "depth", compute.LHS.Ref)
	require.NotNil(t, compute.RHS.Literal)
	assert.Equal(t, 2.0, *compute.RHS.Literal)
}

func TestParseSequenceCompilable(t *testing.T) {
	seq, err := ParseSequence([]byte(widgetSequence))
	require.NoError(t, err)

	p, err := plan.Compile(seq.Steps)
	require.NoError(t, err)
	assert.Len(t, p.Instructions, 3)
}

func TestParseSequenceErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "empty steps",
			data: "name: empty\nsteps: []\n",
		},
		{
			name: "step with no variant",
			data: "name: bad\nsteps:\n  - bind: x\n",
		},
		{
			name: "step with two variants",
			data: "name: bad\nsteps:\n  - value: 1.0\n    cmd: {type: start_path}\n",
		},
		{
			name: "unknown top-level field",
			data: "name: bad\nversion: 2\nsteps:\n  - value: 1.0\n",
		},
		{
			name: "unknown command tag",
			data: "name: bad\nsteps:\n  - cmd: {type: quantum_fold}\n",
		},
		{
			name: "unknown command field",
			data: "name: bad\nsteps:\n  - cmd: {type: start_path, speed: 9}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSequence([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
