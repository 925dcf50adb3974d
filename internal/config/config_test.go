package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[output]
directory = "reports"

[graph]
path = "graph.yaml"

[[contract]]
containers = ["myapp"]
layers = ["high", "medium", "low"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.Output.Directory)
	assert.Equal(t, "graph.yaml", cfg.Graph.Path)
	require.Len(t, cfg.Contracts, 1)
	assert.Equal(t, []string{"myapp"}, cfg.Contracts[0].Containers)
	assert.Equal(t, []string{"high", "medium", "low"}, cfg.Contracts[0].Layers)
}

func TestLoad_Exclude(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "exclude = [\"myapp.*.tests\", \"myapp.vendor.*\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"myapp.*.tests", "myapp.vendor.*"}, cfg.Exclude)
}

func TestLoadConfigWithTarget_MissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfigWithTarget("", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigWithTarget_WalksUpFromTarget(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	content := "[output]\ndirectory = \"out\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadConfigWithTarget("", nested)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Directory)
}
