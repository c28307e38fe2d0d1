package render

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/lookgraph/internal/dag"
	"github.com/leapstack-labs/lookgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleEdges = []dag.Edge{
	{Parent: "model.ecommerce", Child: "explore.orders"},
	{Parent: "explore.orders", Child: "view.customers"},
	{Parent: "explore.orders", Child: "view.orders"},
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, sampleEdges, DefaultStyle))
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, "rankdir")
	assert.Contains(t, out, "LR")
	assert.Contains(t, out, "lightblue2")
	assert.Contains(t, out, "filled")
	assert.Equal(t, len(sampleEdges), strings.Count(out, "->"))

	for _, id := range []string{"model.ecommerce", "explore.orders", "view.customers", "view.orders"} {
		assert.Equal(t, 1, strings.Count(out, `label="`+id+`"`), "one node per identifier: %s", id)
	}
}

func TestWriteDOT_KeepsDuplicateEdges(t *testing.T) {
	edges := []dag.Edge{
		{Parent: "explore.orders", Child: "view.orders"},
		{Parent: "explore.orders", Child: "view.orders"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, edges, DefaultStyle))
	assert.Equal(t, 2, strings.Count(buf.String(), "->"))
}

func TestWriteDOT_EscapesLabels(t *testing.T) {
	edges := []dag.Edge{{Parent: `view.say "hi"`, Child: "view.orders"}}
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, edges, DefaultStyle))
	assert.Contains(t, buf.String(), `view.say \"hi\"`)
}

func TestWriteDOT_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, nil, Style{}))
	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.NotContains(t, out, "->")
	assert.NotContains(t, out, "rankdir")
}

func TestRender_SourceOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "graph.gv")
	r := &Renderer{Format: "gv", Style: DefaultStyle, Logger: testutil.NewTestLogger(t)}

	artifact, err := r.Render(context.Background(), sampleEdges, path)
	require.NoError(t, err)
	assert.Equal(t, path, artifact)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"explore.orders" -> "view.orders"`)
}

func TestRender_MissingEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.gv")
	r := &Renderer{Format: "pdf", Engine: "lookgraph-no-such-engine"}

	_, err := r.Render(context.Background(), sampleEdges, path)
	require.Error(t, err)
	assert.True(t, IsEngineNotFound(err))

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, path, rerr.Path)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "source should be written before the engine runs")
}

func TestRender_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	r := &Renderer{Format: "gv"}
	_, err := r.Render(context.Background(), sampleEdges, filepath.Join(blocker, "graph.gv"))
	require.Error(t, err)

	var rerr *RenderError
	assert.ErrorAs(t, err, &rerr)
}

func TestRender_WithGraphviz(t *testing.T) {
	if _, err := exec.LookPath(DefaultEngine); err != nil {
		t.Skip("graphviz not installed")
	}

	path := filepath.Join(t.TempDir(), "graph.gv")
	r := &Renderer{Format: "svg", Style: DefaultStyle}

	artifact, err := r.Render(context.Background(), sampleEdges, path)
	require.NoError(t, err)
	assert.Equal(t, path+".svg", artifact)

	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSourceOnly(t *testing.T) {
	assert.True(t, SourceOnly("gv"))
	assert.True(t, SourceOnly("DOT"))
	assert.False(t, SourceOnly("pdf"))
}

func TestViewerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"darwin", "open", []string{"g.pdf"}, true},
		{"linux", "xdg-open", []string{"g.pdf"}, true},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "g.pdf"}, true},
		{"plan9", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, ok := viewerCommand(tt.goos, "g.pdf")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
