package board

const (
	MinScale = 0.5
	MaxScale = 2.0

	MinGridSpacing     = 10.0
	MaxGridSpacing     = 200.0
	DefaultGridSpacing = 20.0

	ZoomInMultiplier  = 1.1
	ZoomOutMultiplier = 0.9
)

const snapTolerance = 1e-9

// Viewport holds the session-wide zoom factor and grid spacing.
// Grid spacing is kept in base (unscaled) units.
type Viewport struct {
	scale       float64
	gridSpacing float64
}

func NewViewport() *Viewport {
	return &Viewport{scale: 1, gridSpacing: DefaultGridSpacing}
}

func (v *Viewport) Scale() float64       { return v.scale }
func (v *Viewport) GridSpacing() float64 { return v.gridSpacing }

// SetScale multiplies the current scale by multiplier. Results outside
// [MinScale, MaxScale] are rejected and the scale stays as it was.
func (v *Viewport) SetScale(multiplier float64) bool {
	proposed := v.scale * multiplier
	if proposed < MinScale || proposed > MaxScale {
		return false
	}
	v.scale = proposed
	return true
}

// SetGridSpacing clamps spacing into [MinGridSpacing, MaxGridSpacing] and
// returns the value actually stored.
func (v *Viewport) SetGridSpacing(spacing float64) float64 {
	v.gridSpacing = ClampGridSpacing(spacing)
	return v.gridSpacing
}

func ClampGridSpacing(spacing float64) float64 {
	if spacing < MinGridSpacing {
		return MinGridSpacing
	}
	if spacing > MaxGridSpacing {
		return MaxGridSpacing
	}
	return spacing
}

func (v *Viewport) ToScreen(model float64) float64 { return model * v.scale }
func (v *Viewport) ToModel(screen float64) float64 { return screen / v.scale }

// ScreenRect converts a model-space rectangle to screen space.
func (v *Viewport) ScreenRect(r Rect) Rect { return r.Scale(v.scale) }

// SnapModel snaps a model-space coordinate to the unscaled grid, so its
// screen projection lands on the scaled grid. Grid multiples are returned
// exactly at any scale.
func (v *Viewport) SnapModel(model float64) float64 {
	return SnapToGrid(model, v.gridSpacing, 1)
}

// SnapExtent snaps a model-space size to the grid without letting it fall
// below minimum. A snap that would undershoot rounds up to the next step.
func (v *Viewport) SnapExtent(model, minimum float64) float64 {
	if model < minimum {
		model = minimum
	}
	snapped := v.SnapModel(model)
	for snapped < minimum-snapTolerance {
		snapped += v.gridSpacing
	}
	return snapped
}
