package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/schema"
)

func TestExportDeterministic(t *testing.T) {
	c, err := schema.Load()
	require.NoError(t, err)

	first, err := c.ExportJSON()
	require.NoError(t, err)
	second, err := c.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportShape(t *testing.T) {
	c, err := schema.Load()
	require.NoError(t, err)

	doc, err := c.Export()
	require.NoError(t, err)
	assert.Equal(t, cmds.ProtocolVersion, doc.ProtocolVersion)

	byTag := map[string]schema.CommandDoc{}
	for _, cd := range doc.Commands {
		byTag[cd.Tag] = cd
	}

	extrude, ok := byTag["extrude"]
	require.True(t, ok)
	var names []string
	for _, f := range extrude.Fields {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"target", "distance", "cap"}, names)

	tangential, ok := byTag["extend_path"]
	require.True(t, ok)
	require.Len(t, tangential.Fields, 2)

	perspective, ok := byTag["default_camera_perspective_settings"]
	require.True(t, ok)
	require.Len(t, perspective.Fields, 1)
	assert.False(t, perspective.Fields[0].Optional)
}

// The Go registry and the CUE catalog describe the same protocol; every
// tag must appear in both.
func TestCatalogCoversRegistry(t *testing.T) {
	c, err := schema.Load()
	require.NoError(t, err)

	assert.Equal(t, cmds.Tags(), c.Tags())
}
