package board

import "math"

// Rect is an axis-aligned rectangle. Units depend on the caller: model or screen.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Scale returns r with every component multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Inflate grows r by margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, Width: r.Width + 2*margin, Height: r.Height + 2*margin}
}

// NormalizedRect builds the rectangle spanned by two corner points in any order.
func NormalizedRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		X:      math.Min(x1, x2),
		Y:      math.Min(y1, y2),
		Width:  math.Abs(x2 - x1),
		Height: math.Abs(y2 - y1),
	}
}

// SnapToGrid rounds value to the nearest multiple of gridSpacing*scale.
// The function has no unit opinion; callers pre-scale and post-unscale.
func SnapToGrid(value, gridSpacing, scale float64) float64 {
	step := gridSpacing * scale
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}

// Overlaps is a strict intersection test. Touching edges do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Direction is where the moving rectangle gets pushed.
type Direction int

const (
	PushLeft Direction = iota
	PushRight
	PushUp
	PushDown
)

func (d Direction) String() string {
	switch d {
	case PushLeft:
		return "left"
	case PushRight:
		return "right"
	case PushUp:
		return "up"
	case PushDown:
		return "down"
	}
	return "unknown"
}

// Displacement is the smallest push that takes a moving rectangle clear of another.
type Displacement struct {
	Axis      Axis
	Distance  float64
	Direction Direction
}

// MinDisplacement computes the four push-out distances for two overlapping
// rectangles and returns the smallest. Ties go to the first candidate in the
// order left, right, up, down.
func MinDisplacement(moving, other Rect) Displacement {
	candidates := [4]Displacement{
		{Axis: AxisX, Distance: moving.Right() - other.Left(), Direction: PushLeft},
		{Axis: AxisX, Distance: other.Right() - moving.Left(), Direction: PushRight},
		{Axis: AxisY, Distance: moving.Bottom() - other.Top(), Direction: PushUp},
		{Axis: AxisY, Distance: other.Bottom() - moving.Top(), Direction: PushDown},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c.Distance) < math.Abs(best.Distance) {
			best = c
		}
	}
	return best
}
