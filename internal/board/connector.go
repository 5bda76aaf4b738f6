package board

import "math"

const (
	curveFactor    = 0.3
	maxCurveOffset = 150.0
)

// Connector links two distinct cards. Stored directed, treated as undirected.
type Connector struct {
	From string
	To   string
}

func (c Connector) Involves(id string) bool {
	return c.From == id || c.To == id
}

func (c Connector) Joins(a, b string) bool {
	return (c.From == a && c.To == b) || (c.From == b && c.To == a)
}

// Point is a screen-space coordinate.
type Point struct {
	X float64
	Y float64
}

// Path is the rendered cubic Bezier of a connector, in screen space.
type Path struct {
	Connector   Connector
	Start       Point
	Control1    Point
	Control2    Point
	End         Point
	StrokeWidth float64
}

// ConnectorStore owns connectors. Paths are derived and rebuilt by
// RecomputeGeometry; they are never authoritative.
type ConnectorStore struct {
	connectors []Connector
	paths      []Path
}

func NewConnectorStore() *ConnectorStore {
	return &ConnectorStore{connectors: make([]Connector, 0)}
}

func (s *ConnectorStore) FindBetween(a, b string) (Connector, bool) {
	for _, c := range s.connectors {
		if c.Joins(a, b) {
			return c, true
		}
	}
	return Connector{}, false
}

// Toggle removes the connector between a and b if there is one, otherwise
// adds it. It reports whether a connector now exists. a == b is a no-op.
func (s *ConnectorStore) Toggle(a, b string) bool {
	if a == b {
		return false
	}
	for i, c := range s.connectors {
		if c.Joins(a, b) {
			s.connectors = append(s.connectors[:i], s.connectors[i+1:]...)
			return false
		}
	}
	s.connectors = append(s.connectors, Connector{From: a, To: b})
	return true
}

// Add creates a connector unless it would be a self-link or a duplicate.
func (s *ConnectorStore) Add(a, b string) bool {
	if a == b {
		return false
	}
	if _, ok := s.FindBetween(a, b); ok {
		return false
	}
	s.connectors = append(s.connectors, Connector{From: a, To: b})
	return true
}

// RemoveInvolving drops every connector touching id and returns how many went.
func (s *ConnectorStore) RemoveInvolving(id string) int {
	kept := s.connectors[:0]
	removed := 0
	for _, c := range s.connectors {
		if c.Involves(id) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	s.connectors = kept
	return removed
}

// Touching returns the connectors that have id as an endpoint.
func (s *ConnectorStore) Touching(id string) []Connector {
	var out []Connector
	for _, c := range s.connectors {
		if c.Involves(id) {
			out = append(out, c)
		}
	}
	return out
}

func (s *ConnectorStore) All() []Connector {
	return s.connectors
}

func (s *ConnectorStore) Len() int {
	return len(s.connectors)
}

func (s *ConnectorStore) Paths() []Path {
	return s.paths
}

// RecomputeGeometry rebuilds every rendered path from current card geometry.
func (s *ConnectorStore) RecomputeGeometry(cards *CardStore, scale float64) {
	paths := make([]Path, 0, len(s.connectors))
	for _, c := range s.connectors {
		from, to := cards.FindByID(c.From), cards.FindByID(c.To)
		if from == nil || to == nil {
			continue
		}
		path := CurveBetween(from, to, scale)
		path.Connector = c
		paths = append(paths, path)
	}
	s.paths = paths
}

// CurveBetween computes the S-curve joining the centers of two cards.
// Control points sit at the 25% and 75% marks, pushed sideways by
// min(distance*0.3, 150*scale); the bend flips with the sign of dy.
func CurveBetween(from, to *Card, scale float64) Path {
	x1, y1 := from.Center()
	x2, y2 := to.Center()
	dx, dy := x2-x1, y2-y1
	distance := math.Sqrt(dx*dx + dy*dy)
	curve := math.Min(distance*curveFactor, maxCurveOffset*scale)

	bend := curve
	if dy <= 0 {
		bend = -curve
	}
	cx1, cy1 := x1+dx*0.25+bend, y1+dy*0.25
	cx2, cy2 := x1+dx*0.75-bend, y1+dy*0.75

	return Path{
		Start:       Point{X: x1 * scale, Y: y1 * scale},
		Control1:    Point{X: cx1 * scale, Y: cy1 * scale},
		Control2:    Point{X: cx2 * scale, Y: cy2 * scale},
		End:         Point{X: x2 * scale, Y: y2 * scale},
		StrokeWidth: 2 * scale,
	}
}

// At evaluates the Bezier at t in [0, 1].
func (p Path) At(t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*p.Start.X + b*p.Control1.X + c*p.Control2.X + d*p.End.X,
		Y: a*p.Start.Y + b*p.Control1.Y + c*p.Control2.Y + d*p.End.Y,
	}
}
