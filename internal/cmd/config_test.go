package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitGeneratesTemplates(t *testing.T) {
	cases := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "capture."+tc.format)
			c := &ConfigInit{Command: "capture", Format: tc.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)

			var root map[string]any
			require.NoError(t, tc.unmarshal(data, &root))
			assert.Contains(t, root, "frames")
			assert.Contains(t, root, "output")
		})
	}
}

func TestConfigInitSkipsPositionalArgs(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "toggle.json")
	c := &ConfigInit{Command: "toggle", Format: "json", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	assert.NotContains(t, root, "channel")
	assert.NotContains(t, root, "state")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &ConfigInit{Command: "capture", Format: "json", Output: dest}
	assert.Error(t, c.Run())

	c.Force = true
	assert.NoError(t, c.Run())
}
