package main

import (
	"os"
	"path/filepath"
	"testing"

	"cardboard/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, c *Config)
	}{
		{
			name:    "grid clamped high",
			content: "grid_spacing: 500\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, board.MaxGridSpacing, c.GridSpacing)
			},
		},
		{
			name:    "grid clamped low",
			content: "grid_spacing: 3\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, board.MinGridSpacing, c.GridSpacing)
			},
		},
		{
			name:    "confirmations off",
			content: "confirmations: false\nborder_width: 4\n",
			check: func(t *testing.T, c *Config) {
				assert.False(t, c.Confirmations)
				assert.Equal(t, 4.0, c.BorderWidth)
			},
		},
		{
			name:    "partial key bindings",
			content: "keys:\n  copy: [\"ctrl+y\"]\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, []string{"ctrl+y"}, c.Keys.Copy)
				assert.Equal(t, board.DefaultKeyBindings().Paste, c.Keys.Paste)
			},
		},
		{
			name:    "unknown keys ignored",
			content: "theme: dark\nstart_scale: 1.5\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 1.5, c.StartScale)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := loadConfig(writeConfig(t, tt.content))
			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{name: "bad yaml", content: "grid_spacing: [", msg: "parse config"},
		{name: "scale out of range", content: "start_scale: 5\n", msg: "startscale failed lte"},
		{name: "negative border", content: "border_width: -1\n", msg: "borderwidth failed gt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConfig_GetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "board.png", config.GetSavePath("board.png"))

	dir := filepath.Join(t.TempDir(), "exports")
	config.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "board.png"), config.GetSavePath("board.png"))
	assert.DirExists(t, dir)
}

func TestNewModel_AppliesConfig(t *testing.T) {
	config := defaultConfig()
	config.GridSpacing = 40
	config.StartScale = 2
	config.Confirmations = false

	m := newModel(config, zap.NewNop())

	vp := m.board.State().Viewport
	assert.Equal(t, 40.0, vp.GridSpacing())
	assert.Equal(t, 2.0, vp.Scale())
	assert.True(t, m.prompter.autoConfirm)
}
