package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/schema"
)

func TestSchemaExport(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSchemaCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	var doc schema.Doc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, cmds.ProtocolVersion, doc.ProtocolVersion)
	assert.Len(t, doc.Commands, len(cmds.Tags()))
}

func TestSchemaExportToFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "catalog.json")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSchemaCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--output", outputFile})

	err := cmd.Execute()
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var doc schema.Doc
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc.Commands)
}
