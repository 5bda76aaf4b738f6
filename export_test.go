package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cardboard/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportToPNG(t *testing.T) {
	ctrl := board.NewController(nil)
	a := ctrl.AddCardAt(0, 0)
	b := ctrl.AddCardAt(400, 200)
	ctrl.SetCardText(a.ID, "first card with some text to wrap")
	ctrl.State().Connectors.Add(a.ID, b.ID)
	ctrl.Zoom(1)

	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, ExportToPNG(ctrl.View(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 340, cfg.Height)
}

func TestExportToPNG_Empty(t *testing.T) {
	err := ExportToPNG(board.View{}, filepath.Join(t.TempDir(), "empty.png"))
	assert.EqualError(t, err, "nothing to export")
}
