package wire

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/units"
)

func TestCanonicalizeSortsKeys(t *testing.T) {
	out, err := Canonicalize([]byte(`{"b":1,"a":2,"c":{"z":true,"y":false}}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"c":{"y":false,"z":true}}`, string(out))
}

// RFC 8785 orders keys by UTF-16 code units. U+10000 encodes as a
// surrogate pair starting at 0xD800, so it sorts before U+FFFF even
// though its UTF-8 bytes sort after.
func TestCanonicalizeUTF16KeyOrder(t *testing.T) {
	out, err := Canonicalize([]byte("{\"￿\":1,\"\U00010000\":2}"))
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"￿\":1}", string(out))
}

func TestCanonicalizeNormalizesNFC(t *testing.T) {
	// "é" composed (U+00E9) and decomposed (e + U+0301) canonicalize
	// to the same bytes.
	composed, err := Canonicalize([]byte(`{"name":"café"}`))
	require.NoError(t, err)
	decomposed, err := Canonicalize([]byte(`{"name":"café"}`))
	require.NoError(t, err)
	assert.Equal(t, composed, decomposed)
}

func TestCanonicalizeNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`1.0`, `1`},
		{`-0.0`, `0`},
		{`10`, `10`},
		{`2.5`, `2.5`},
		{`1e2`, `100`},
		{`3.141592653589793`, `3.141592653589793`},
	}
	for _, tc := range cases {
		out, err := Canonicalize([]byte(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out), "input %s", tc.in)
	}
}

func TestCanonicalizeNoHTMLEscaping(t *testing.T) {
	out, err := Canonicalize([]byte(`{"s":"<a>&b</a>"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"s":"<a>&b</a>"}`, string(out))
}

func TestCanonicalizeRejectsBadInput(t *testing.T) {
	_, err := Canonicalize([]byte(`{"a":`))
	require.Error(t, err)
	_, err = Canonicalize([]byte(`{} trailing`))
	require.Error(t, err)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	enc, err := EncodeCommand(cmds.Extrude{Target: cmds.Ref("sketch"), Distance: units.Mm(5.5)})
	require.NoError(t, err)
	once, err := Canonicalize(enc)
	require.NoError(t, err)
	twice, err := Canonicalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestCanonicalCommandGolden(t *testing.T) {
	enc, err := EncodeCommand(cmds.Extrude{Target: cmds.Ref("sketch"), Distance: units.Mm(5.5), Cap: false})
	require.NoError(t, err)
	canonical, err := Canonicalize(enc)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "command_extrude", canonical)
}

func TestCanonicalPlanGolden(t *testing.T) {
	p, err := plan.Compile([]plan.Step{
		plan.ValueStep{Bind: "w", Value: 10},
		plan.CommandStep{Cmd: cmds.StartPath{}, Bind: "p"},
		plan.CommandStep{Cmd: cmds.Extrude{Target: cmds.Ref("p"), Distance: units.Mm(10), Cap: true}},
	})
	require.NoError(t, err)

	enc, err := EncodePlan(p)
	require.NoError(t, err)
	canonical, err := Canonicalize(enc)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "plan_extrude", canonical)
}
