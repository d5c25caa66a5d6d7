package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	c := New(map[string]any{
		"name":    "treefill",
		"enabled": true,
		"count":   3,
		"density": 1.5,
		"list":    []any{"a", "b"},
	})

	assert.Equal(t, "treefill", c.String("name", ""))
	assert.Equal(t, "fallback", c.String("missing", "fallback"))
	assert.Equal(t, "fallback", c.String("count", "fallback"))

	assert.True(t, c.Bool("enabled", false))
	assert.False(t, c.Bool("missing", false))

	assert.Equal(t, 3, c.Int("count", 0))
	assert.Equal(t, 7, c.Int("missing", 7))

	assert.Equal(t, 1.5, c.Float("density", 0))
	assert.Equal(t, 3.0, c.Float("count", 0))

	assert.Equal(t, []string{"a", "b"}, c.StringSlice("list"))
	assert.Nil(t, c.StringSlice("missing"))

	assert.True(t, c.Has("name"))
	assert.False(t, c.Has("missing"))
}

func TestIntRejectsFractional(t *testing.T) {
	c := New(map[string]any{"v": 2.5})
	assert.Equal(t, -1, c.Int("v", -1))
}

func TestStringSliceMixedTypes(t *testing.T) {
	c := New(map[string]any{"list": []any{"a", 1}})
	assert.Nil(t, c.StringSlice("list"))
}

func TestNilMap(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "d", c.String("k", "d"))
}

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte("name: engine\nbranches:\n  - Particle\n  - Track\n"))
	require.NoError(t, err)

	assert.Equal(t, "engine", cfg.String("name", ""))
	assert.Equal(t, []string{"Particle", "Track"}, cfg.StringSlice("branches"))
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("{invalid"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"name":"engine","count":2}`))
	require.NoError(t, err)

	assert.Equal(t, "engine", cfg.String("name", ""))
	assert.Equal(t, 2, cfg.Int("count", 0))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "writer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: engine\n"), 0o644))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "engine", cfg.String("name", ""))
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "writer.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := FromFile(path)
	assert.ErrorContains(t, err, "unsupported config file extension")
}
