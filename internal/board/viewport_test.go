package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport_SetScale(t *testing.T) {
	vp := NewViewport()

	assert.True(t, vp.SetScale(1.1))
	assert.InDelta(t, 1.1, vp.Scale(), 1e-9)

	assert.False(t, vp.SetScale(2.0), "2.2 is above the maximum")
	assert.InDelta(t, 1.1, vp.Scale(), 1e-9)

	assert.False(t, vp.SetScale(0.4))
	assert.InDelta(t, 1.1, vp.Scale(), 1e-9)
}

func TestViewport_SetScaleBounds(t *testing.T) {
	vp := NewViewport()
	assert.True(t, vp.SetScale(2.0))
	assert.InDelta(t, MaxScale, vp.Scale(), 1e-9)
	assert.True(t, vp.SetScale(0.25))
	assert.InDelta(t, MinScale, vp.Scale(), 1e-9)
}

func TestViewport_SetGridSpacing(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		want      float64
	}{
		{name: "below minimum", requested: 5, want: 10},
		{name: "above maximum", requested: 500, want: 200},
		{name: "in range", requested: 50, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport()
			assert.Equal(t, tt.want, vp.SetGridSpacing(tt.requested))
			assert.Equal(t, tt.want, vp.GridSpacing())
		})
	}
}

func TestViewport_SnapExtentNeverUndershoots(t *testing.T) {
	vp := NewViewport()
	vp.SetGridSpacing(30)

	assert.InDelta(t, 120, vp.SnapExtent(90, MinCardWidth), 1e-9)
	assert.InDelta(t, 60, vp.SnapExtent(10, MinCardHeight), 1e-9)
	assert.InDelta(t, 210, vp.SnapExtent(200, MinCardWidth), 1e-9)
}

func TestViewport_SnapExtentAtFractionalScale(t *testing.T) {
	tests := []struct {
		name   string
		grid   float64
		width  float64
		height float64
		wantW  float64
		wantH  float64
	}{
		{name: "grid 10 keeps minimum", grid: 10, width: 100, height: 50, wantW: 100, wantH: 50},
		{name: "grid 20 keeps minimum width", grid: 20, width: 100, height: 50, wantW: 100, wantH: 60},
		{name: "grid 20 exact multiples", grid: 20, width: 240, height: 120, wantW: 240, wantH: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport()
			vp.SetGridSpacing(tt.grid)
			require.True(t, vp.SetScale(ZoomInMultiplier))

			assert.Equal(t, tt.wantW, vp.SnapExtent(tt.width, MinCardWidth))
			assert.Equal(t, tt.wantH, vp.SnapExtent(tt.height, MinCardHeight))
		})
	}
}

func TestViewport_SnapModelIsExactAtAnyScale(t *testing.T) {
	for _, scale := range []float64{ZoomInMultiplier, ZoomOutMultiplier, 1.21, 0.81} {
		vp := NewViewport()
		require.True(t, vp.SetScale(scale))
		assert.Equal(t, 100.0, vp.SnapModel(100), "scale %v", scale)
		assert.Equal(t, 120.0, vp.SnapModel(119.99999999999999), "scale %v", scale)
		assert.Equal(t, 40.0, vp.SnapModel(31), "scale %v", scale)
	}
}

func TestViewport_Conversions(t *testing.T) {
	vp := NewViewport()
	vp.SetScale(2)

	assert.Equal(t, 200.0, vp.ToScreen(100))
	assert.Equal(t, 50.0, vp.ToModel(100))
	assert.Equal(t, Rect{X: 20, Y: 40, Width: 200, Height: 100}, vp.ScreenRect(Rect{X: 10, Y: 20, Width: 100, Height: 50}))
}
