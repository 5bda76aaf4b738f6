package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorStore_Toggle(t *testing.T) {
	store := NewConnectorStore()

	assert.True(t, store.Toggle("card1", "card2"))
	assert.Equal(t, 1, store.Len())

	assert.False(t, store.Toggle("card2", "card1"), "reverse direction removes the same pair")
	assert.Equal(t, 0, store.Len())
}

func TestConnectorStore_ToggleTwiceRestoresSet(t *testing.T) {
	store := NewConnectorStore()
	store.Toggle("card1", "card3")
	before := append([]Connector(nil), store.All()...)

	store.Toggle("card1", "card2")
	store.Toggle("card1", "card2")

	assert.Equal(t, before, store.All())
}

func TestConnectorStore_NoSelfConnector(t *testing.T) {
	store := NewConnectorStore()
	assert.False(t, store.Toggle("card1", "card1"))
	assert.False(t, store.Add("card1", "card1"))
	assert.Equal(t, 0, store.Len())
}

func TestConnectorStore_FindBetweenEitherDirection(t *testing.T) {
	store := NewConnectorStore()
	store.Add("card1", "card2")

	c, ok := store.FindBetween("card2", "card1")
	require.True(t, ok)
	assert.Equal(t, Connector{From: "card1", To: "card2"}, c)

	assert.False(t, store.Add("card2", "card1"), "duplicate pair")
}

func TestConnectorStore_RemoveInvolving(t *testing.T) {
	store := NewConnectorStore()
	store.Add("card1", "card2")
	store.Add("card3", "card1")
	store.Add("card2", "card3")

	assert.Equal(t, 2, store.RemoveInvolving("card1"))
	assert.Equal(t, []Connector{{From: "card2", To: "card3"}}, store.All())
}

func TestCurveBetween(t *testing.T) {
	from := &Card{ID: "card1", X: 0, Y: 0, Width: 100, Height: 50}
	to := &Card{ID: "card2", X: 300, Y: 200, Width: 100, Height: 50}

	tests := []struct {
		name  string
		scale float64
	}{
		{name: "unit scale", scale: 1},
		{name: "zoomed in", scale: 2},
		{name: "zoomed out", scale: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := CurveBetween(from, to, tt.scale)

			dx, dy := 300.0, 200.0
			curve := math.Min(math.Sqrt(dx*dx+dy*dy)*0.3, 150*tt.scale)
			s := tt.scale

			assert.InDelta(t, 50*s, path.Start.X, 1e-9)
			assert.InDelta(t, 25*s, path.Start.Y, 1e-9)
			assert.InDelta(t, 350*s, path.End.X, 1e-9)
			assert.InDelta(t, 225*s, path.End.Y, 1e-9)
			assert.InDelta(t, (50+dx*0.25+curve)*s, path.Control1.X, 1e-9)
			assert.InDelta(t, (25+dy*0.25)*s, path.Control1.Y, 1e-9)
			assert.InDelta(t, (50+dx*0.75-curve)*s, path.Control2.X, 1e-9)
			assert.InDelta(t, (25+dy*0.75)*s, path.Control2.Y, 1e-9)
			assert.InDelta(t, 2*s, path.StrokeWidth, 1e-9)
		})
	}
}

func TestCurveBetween_BendFlipsWithVerticalDirection(t *testing.T) {
	a := &Card{X: 0, Y: 200, Width: 100, Height: 50}
	b := &Card{X: 300, Y: 0, Width: 100, Height: 50}

	up := CurveBetween(a, b, 1)
	down := CurveBetween(b, a, 1)

	x1, _ := a.Center()
	assert.Less(t, up.Control1.X, x1+300*0.25, "dy < 0 bends the first control point left")
	bx, _ := b.Center()
	assert.Less(t, down.Control1.X, bx-300*0.25+200, "dy > 0 bends the first control point right")
	assert.Greater(t, down.Control1.X, bx-300*0.25)
}

func TestConnectorStore_RecomputeGeometry(t *testing.T) {
	vp := NewViewport()
	cards := NewCardStore()
	a := cards.AddAt(vp, 0, 0)
	b := cards.AddAt(vp, 400, 200)
	store := NewConnectorStore()
	store.Add(a.ID, b.ID)

	store.RecomputeGeometry(cards, 1)
	require.Len(t, store.Paths(), 1)
	first := store.Paths()[0]

	b.X += 100
	store.RecomputeGeometry(cards, 1)
	assert.InDelta(t, first.End.X+100, store.Paths()[0].End.X, 1e-9)
	assert.Equal(t, Connector{From: a.ID, To: b.ID}, store.Paths()[0].Connector)
}

func TestPath_At(t *testing.T) {
	p := Path{
		Start:    Point{X: 0, Y: 0},
		Control1: Point{X: 10, Y: 0},
		Control2: Point{X: 20, Y: 0},
		End:      Point{X: 30, Y: 0},
	}
	assert.Equal(t, p.Start, p.At(0))
	assert.Equal(t, p.End, p.At(1))
	assert.InDelta(t, 15, p.At(0.5).X, 1e-9)
}
