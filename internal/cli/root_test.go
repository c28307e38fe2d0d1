package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/lookgraph/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_DefaultsToGraph(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	modelsDir := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(modelsDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(modelsDir, "shop.model.lkml"),
		[]byte("explore: orders {\n  join: users {}\n}\n"), 0o600))

	out, err := executeRoot(t,
		"--models-dir", modelsDir,
		"--output-file", "graph.gv",
		"--format", "gv",
		"--view=false",
		"view.users",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Rendering graph.gv")

	data, err := os.ReadFile(filepath.Join(dir, "graph.gv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `label="explore.orders"`)
	assert.Contains(t, string(data), `label="view.users"`)
	assert.NotContains(t, string(data), `label="model.shop"`)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lookml"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lookml", "a.model.lkml"), []byte("explore: a {}"), 0o600))
	cfgPath := filepath.Join(dir, "lookgraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("models_dir: lookml\noutput_file: out/g.gv\nformat: gv\nview: false\n"), 0o600))

	_, err := executeRoot(t, "--config", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "out", "g.gv"))
	assert.NoError(t, err, "paths in the config file are relative to it")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeRoot(t, "--rankdir", "diagonal", "edges")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rankdir")
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"graph", "edges", "manifest", "version", "completion"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := executeRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "lookgraph"), "completion script should mention the binary")

	_, err = executeRoot(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootCmd_RendererFollowsOutputFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeRoot(t, "version", "--output", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info), "output: %s", out)
	assert.Equal(t, Version, info["version"])
	assert.Equal(t, GitCommit, info["git_commit"])
	assert.Equal(t, BuildDate, info["build_date"])
}
