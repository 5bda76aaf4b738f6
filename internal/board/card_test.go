package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardStore_AddAtSnapsToGrid(t *testing.T) {
	vp := NewViewport()
	vp.SetGridSpacing(50)
	store := NewCardStore()

	card := store.AddAt(vp, 103, 97)

	assert.Equal(t, "card1", card.ID)
	assert.Equal(t, "Card 1", card.Title)
	assert.InDelta(t, 100, card.X, 1e-9)
	assert.InDelta(t, 100, card.Y, 1e-9)
	assert.GreaterOrEqual(t, card.Width, MinCardWidth)
	assert.GreaterOrEqual(t, card.Height, MinCardHeight)
}

func TestCardStore_AddCascades(t *testing.T) {
	vp := NewViewport()
	store := NewCardStore()

	first := store.Add(vp)
	second := store.Add(vp)
	third := store.Add(vp)

	assert.Less(t, first.X, second.X)
	assert.Less(t, first.Y, second.Y)
	assert.Less(t, second.X, third.X)
	assert.Equal(t, second.X-first.X, second.Y-first.Y, "fan out diagonally")
}

func TestCardStore_IDsAreNeverReused(t *testing.T) {
	vp := NewViewport()
	store := NewCardStore()
	store.Add(vp)
	second := store.Add(vp)

	removed := store.Remove(func(c *Card) bool { return c.ID == second.ID })
	require.Len(t, removed, 1)
	assert.False(t, store.Contains(second.ID))

	next := store.Add(vp)
	assert.Equal(t, "card3", next.ID)
	assert.Equal(t, 2, store.Len())
}

func TestCardStore_Restore(t *testing.T) {
	store := NewCardStore()
	card := store.Restore("Plan", "details", Rect{X: 40, Y: 60, Width: 20, Height: 10})

	assert.Equal(t, "card1", card.ID)
	assert.Equal(t, "Plan", card.Title)
	assert.Equal(t, "details", card.Text)
	assert.Equal(t, MinCardWidth, card.Width)
	assert.Equal(t, MinCardHeight, card.Height)
}

func TestCardStore_FindAndTopmost(t *testing.T) {
	vp := NewViewport()
	store := NewCardStore()
	a := store.AddAt(vp, 0, 0)
	b := store.AddAt(vp, 0, 0)

	assert.Same(t, a, store.FindByID("card1"))
	assert.Nil(t, store.FindByID("card9"))

	top := store.Topmost(func(c *Card) bool { return c.Bounds().Contains(10, 10) })
	assert.Same(t, b, top)
}
