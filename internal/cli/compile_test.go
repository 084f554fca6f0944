package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/wire"
)

func TestCompileSequence(t *testing.T) {
	path := writeTempFile(t, "widget.yaml", widgetSequence)
	outputFile := filepath.Join(t.TempDir(), "plan.json")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "--output", outputFile})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ compiled \"widget\"")

	encoded, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	p, err := wire.DecodePlan(bytes.TrimSpace(encoded))
	require.NoError(t, err)
	assert.Len(t, p.Instructions, 3)
}

func TestCompileSequenceJSON(t *testing.T) {
	path := writeTempFile(t, "widget.yaml", widgetSequence)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "widget", data["name"])
	assert.NotEmpty(t, data["plan_id"])
}

func TestCompileStdout(t *testing.T) {
	path := writeTempFile(t, "widget.yaml", widgetSequence)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	p, err := wire.DecodePlan(bytes.TrimSpace(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Slots)
}

func TestCompileUnresolvedBinding(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", `
name: dangling
steps:
  - cmd:
      type: extrude
      target: {ref: sketch}
      distance: {magnitude: 1.0, unit: mm}
      cap: false
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_UNRESOLVED", resp.Error.Code)
}

func TestCompileInvalidCommand(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", `
name: inverted
steps:
  - bind: sketch
    cmd:
      type: start_path
  - cmd:
      type: extrude
      target: {ref: sketch}
      distance: {magnitude: -2.0, unit: mm}
      cap: false
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_VALIDATION", resp.Error.Code)
}

func TestCompileMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
