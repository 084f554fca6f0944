package wire

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/geom"
	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/units"
)

func TestCommandRoundTrip(t *testing.T) {
	cases := []cmds.Command{
		cmds.StartPath{},
		cmds.MovePathPen{Path: cmds.Ref("sketch"), To: geom.Point3D{X: 1.5, Y: -2, Z: 0}},
		cmds.ExtendPath{Path: cmds.Slot(0), Segment: cmds.SegmentLine{End: geom.Point3D{X: 10}, Relative: true}},
		cmds.ExtendPath{Path: cmds.Ref("p"), Segment: cmds.SegmentTangentialArcTo{To: geom.Point3D{X: 3, Y: 4}}},
		cmds.ClosePath{PathID: cmds.ID(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"))},
		cmds.Extrude{Target: cmds.Ref("p"), Distance: units.Mm(math.Pi), Cap: true},
		cmds.SelectWithPoint{SelectedAtWindow: geom.Point2D{X: 400, Y: 300}, SelectionType: cmds.SelectionAdd},
		cmds.SetBackgroundColor{Color: geom.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}},
		cmds.DefaultCameraLookAt{Vantage: geom.Point3D{X: 10, Y: 10, Z: 10}, Up: geom.Point3D{Z: 1}},
		cmds.ZoomToFit{ObjectIDs: []cmds.ObjectID{cmds.Ref("a"), cmds.Slot(2)}, Padding: 0.1},
		cmds.Export{EntityIDs: []cmds.ObjectID{}, Format: cmds.ExportGltf},
		cmds.TakeSnapshot{Format: cmds.ImagePng},
	}
	for _, cmd := range cases {
		t.Run(cmd.ModelingCmdName(), func(t *testing.T) {
			data, err := EncodeCommand(cmd)
			require.NoError(t, err)
			back, err := DecodeCommand(data)
			require.NoError(t, err)
			assert.Equal(t, cmd, back)
		})
	}
}

// Float fields must survive the wire to full precision and blob fields
// byte-for-byte.
func TestRoundTripPreservesPrecisionAndBytes(t *testing.T) {
	cmd := cmds.MovePathPen{
		Path: cmds.Ref("p"),
		To:   geom.Point3D{X: math.Pi, Y: math.SmallestNonzeroFloat64, Z: -math.MaxFloat64},
	}
	data, err := EncodeCommand(cmd)
	require.NoError(t, err)
	back, err := DecodeCommand(data)
	require.NoError(t, err)
	assert.Equal(t, cmds.Command(cmd), back)

	env := ResponseEnvelope{
		CmdID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Of:    "take_snapshot",
		Resp:  cmds.Snapshot{Contents: []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
	}
	enc, err := EncodeResponse(env)
	require.NoError(t, err)
	dec, err := DecodeResponse(enc)
	require.NoError(t, err)
	assert.Equal(t, env, dec)
}

func TestDecodeCommandUnknownTag(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"type":"warp_drive","factor":9}`))
	uve, ok := AsUnknownVariant(err)
	require.True(t, ok)
	assert.Equal(t, "warp_drive", uve.Tag)
}

func TestDecodeCommandMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"truncated", `{"type":"extrude","target":{"ref":"p"`},
		{"missing tag", `{"target":{"ref":"p"}}`},
		{"non-string tag", `{"type":7}`},
		{"unknown field", `{"type":"start_path","bogus":1}`},
		{"not an object", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCommand([]byte(tc.data))
			require.Error(t, err)
			_, unknown := AsUnknownVariant(err)
			assert.False(t, unknown, "malformed input must not be reported as an unknown variant")
		})
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := NewEnvelope(cmds.Extrude{Target: cmds.Ref("p"), Distance: units.Mm(4), Cap: true})
	require.NotEqual(t, uuid.Nil, env.CmdID)

	data, err := EncodeEnvelope(env)
	require.NoError(t, err)
	back, err := DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, env, back)
}

func TestEnvelopeRequiresID(t *testing.T) {
	_, err := EncodeEnvelope(Envelope{Cmd: cmds.StartPath{}})
	require.Error(t, err)

	_, err = DecodeEnvelope([]byte(`{"cmd_id":"00000000-0000-0000-0000-000000000000","cmd":{"type":"start_path"}}`))
	require.Error(t, err)
}

func TestPlanRoundTrip(t *testing.T) {
	p, err := plan.Compile([]plan.Step{
		plan.ValueStep{Bind: "w", Value: 2.5},
		plan.ComputeStep{Bind: "w2", Op: plan.OpMul, LHS: plan.NameRef("w"), RHS: plan.Lit(2)},
		plan.CommandStep{Cmd: cmds.StartPath{}, Bind: "sketch"},
		plan.CommandStep{Cmd: cmds.ClosePath{PathID: cmds.Ref("sketch")}},
	})
	require.NoError(t, err)

	data, err := EncodePlan(p)
	require.NoError(t, err)
	back, err := DecodePlan(data)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestDecodePlanUnknownInstruction(t *testing.T) {
	doc := []byte(`{"version":"1","slots":1,"instructions":[` +
		`{"type":"set_value","slot":0,"value":1},` +
		`{"type":"quantum_fold","slot":1}]}`)

	_, err := DecodePlan(doc)
	uve, ok := AsUnknownVariant(err)
	require.True(t, ok)
	assert.Equal(t, "quantum_fold", uve.Tag)

	var skipped []string
	p, err := DecodePlan(doc, AllowUnknown(func(tag string) { skipped = append(skipped, tag) }))
	require.NoError(t, err)
	require.Len(t, p.Instructions, 1)
	assert.Equal(t, []string{"quantum_fold"}, skipped)
}

func TestDecodePlanVersionMismatch(t *testing.T) {
	_, err := DecodePlan([]byte(`{"version":"99","slots":0,"instructions":[]}`))
	require.Error(t, err)
	_, unknown := AsUnknownVariant(err)
	assert.False(t, unknown)
}

func TestDecodePlanRejectsUnknownOperation(t *testing.T) {
	_, err := DecodePlan([]byte(`{"version":"1","slots":1,"instructions":[` +
		`{"type":"arithmetic","op":"mod","lhs":{"literal":1},"rhs":{"literal":2},"slot":0}]}`))
	require.Error(t, err)
}

// The catalog is append-only: payloads recorded by earlier releases
// use a subset of today's tags and fields and must keep decoding under
// the current registry, in strict mode.
func TestDecodeRecordedPlanFromEarlierRelease(t *testing.T) {
	recorded, err := os.ReadFile(filepath.Join("testdata", "golden", "plan_extrude.golden"))
	require.NoError(t, err)

	p, err := DecodePlan(recorded)
	require.NoError(t, err)
	require.Len(t, p.Instructions, 3)
	assert.Equal(t, 2, p.Slots)

	run, ok := p.Instructions[1].(plan.RunCommand)
	require.True(t, ok)
	assert.Equal(t, cmds.StartPath{}, run.Cmd)
}

func TestDecodeRecordedCommandFromEarlierRelease(t *testing.T) {
	recorded := []string{
		`{"type":"start_path"}`,
		`{"cap":false,"distance":{"magnitude":5.5,"unit":"mm"},"target":{"ref":"sketch"},"type":"extrude"}`,
	}
	for _, data := range recorded {
		cmd, err := DecodeCommand([]byte(data))
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	}
}
