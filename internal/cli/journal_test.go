package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/wire"
)

func encodeTestPlan(t *testing.T) string {
	t.Helper()
	p, err := plan.Compile([]plan.Step{
		plan.ValueStep{Bind: "depth", Value: 10},
	})
	require.NoError(t, err)
	encoded, err := wire.EncodePlan(p)
	require.NoError(t, err)
	return writeTempFile(t, "plan.json", string(encoded))
}

func TestJournalAppendAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	planPath := encodeTestPlan(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	appendCmd := NewJournalCommand(rootOpts)
	appendCmd.SetOut(buf)
	appendCmd.SetArgs([]string{"append", dbPath, planPath})
	require.NoError(t, appendCmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	buf.Reset()
	listCmd := NewJournalCommand(rootOpts)
	listCmd.SetOut(buf)
	listCmd.SetArgs([]string{"ls", dbPath})
	require.NoError(t, listCmd.Execute())

	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	plans, ok := data["plans"].([]any)
	require.True(t, ok)
	assert.Len(t, plans, 1)
}

func TestJournalListEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewJournalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"ls", dbPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "no plans recorded")
}

func TestJournalAppendBadPlan(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	planPath := writeTempFile(t, "bad.json", `{"version":"99","slots":0,"instructions":[]}`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewJournalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"append", dbPath, planPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
