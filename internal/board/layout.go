package board

// Layout keeps cards grid-aligned and apart after structural changes.
type Layout struct {
	cards     *CardStore
	selection *Selection
	viewport  *Viewport
}

func NewLayout(cards *CardStore, selection *Selection, viewport *Viewport) *Layout {
	return &Layout{cards: cards, selection: selection, viewport: viewport}
}

// Resolve returns a grid-snapped model position for moving near
// (proposedX, proposedY) that is pushed clear of overlapping cards.
//
// The scan is a single pass in card list order. Each overlap is fixed on one
// axis, leaving a gap of one scaled grid step, and earlier cards are not
// re-checked against the adjusted position. Selected cards are not obstacles.
func (l *Layout) Resolve(moving *Card, proposedX, proposedY float64) (float64, float64) {
	scale := l.viewport.Scale()
	gap := l.viewport.GridSpacing() * scale
	m := Rect{X: proposedX, Y: proposedY, Width: moving.Width, Height: moving.Height}.Scale(scale)

	for _, other := range l.cards.All() {
		if other == moving || l.selection.IsSelected(other.ID) {
			continue
		}
		o := l.viewport.ScreenRect(other.Bounds())
		if !Overlaps(m, o) {
			continue
		}
		switch MinDisplacement(m, o).Direction {
		case PushLeft:
			m.X = o.Left() - m.Width - gap
		case PushRight:
			m.X = o.Right() + gap
		case PushUp:
			m.Y = o.Top() - m.Height - gap
		case PushDown:
			m.Y = o.Bottom() + gap
		}
	}

	return l.viewport.SnapModel(m.X / scale), l.viewport.SnapModel(m.Y / scale)
}

// ResolveAll snaps every card's size to the grid, re-resolves every card
// against the positions its neighbours had before the call, then applies all
// results.
func (l *Layout) ResolveAll() {
	cards := l.cards.All()
	for _, card := range cards {
		card.Width = l.viewport.SnapExtent(card.Width, MinCardWidth)
		card.Height = l.viewport.SnapExtent(card.Height, MinCardHeight)
	}
	type position struct{ x, y float64 }
	resolved := make([]position, len(cards))
	for i, card := range cards {
		x, y := l.Resolve(card, card.X, card.Y)
		resolved[i] = position{x, y}
	}
	for i, card := range cards {
		card.X, card.Y = resolved[i].x, resolved[i].y
	}
}

// SnapCard aligns a card's origin to the grid.
func (l *Layout) SnapCard(card *Card) {
	card.X = l.viewport.SnapModel(card.X)
	card.Y = l.viewport.SnapModel(card.Y)
}

// SnapCardExtent aligns a card's origin and size to the grid, keeping the
// minimum dimensions.
func (l *Layout) SnapCardExtent(card *Card) {
	l.SnapCard(card)
	card.Width = l.viewport.SnapExtent(card.Width, MinCardWidth)
	card.Height = l.viewport.SnapExtent(card.Height, MinCardHeight)
}
