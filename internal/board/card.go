package board

import "fmt"

const (
	MinCardWidth  = 100.0
	MinCardHeight = 50.0

	DefaultCardWidth  = 200.0
	DefaultCardHeight = 100.0

	cascadeOrigin = 40.0
	cascadeStep   = 40.0
	cascadeWrap   = 10
)

// Card is a rectangular node. Geometry is in model space.
type Card struct {
	ID     string
	Title  string
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (c *Card) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

func (c *Card) Center() (float64, float64) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// CardStore owns the cards and the id counter. Ids are never reused.
type CardStore struct {
	cards   []*Card
	counter int
}

func NewCardStore() *CardStore {
	return &CardStore{cards: make([]*Card, 0)}
}

// Add creates a card at the cascading default position.
func (s *CardStore) Add(vp *Viewport) *Card {
	n := len(s.cards) % cascadeWrap
	offset := cascadeOrigin + float64(n)*cascadeStep
	return s.AddAt(vp, offset, offset)
}

// AddAt creates a card with its origin snapped to the grid.
func (s *CardStore) AddAt(vp *Viewport, x, y float64) *Card {
	s.counter++
	card := &Card{
		ID:     fmt.Sprintf("card%d", s.counter),
		Title:  fmt.Sprintf("Card %d", s.counter),
		X:      vp.SnapModel(x),
		Y:      vp.SnapModel(y),
		Width:  DefaultCardWidth,
		Height: DefaultCardHeight,
	}
	s.cards = append(s.cards, card)
	return card
}

// Restore appends a card built from a snapshot, assigning it a fresh id.
func (s *CardStore) Restore(title, text string, bounds Rect) *Card {
	s.counter++
	card := &Card{
		ID:     fmt.Sprintf("card%d", s.counter),
		Title:  title,
		Text:   text,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  max(bounds.Width, MinCardWidth),
		Height: max(bounds.Height, MinCardHeight),
	}
	s.cards = append(s.cards, card)
	return card
}

// Remove deletes every card matching pred and returns the removed cards.
// Connector cleanup is the caller's job.
func (s *CardStore) Remove(pred func(*Card) bool) []*Card {
	var removed []*Card
	kept := make([]*Card, 0, len(s.cards))
	for _, card := range s.cards {
		if pred(card) {
			removed = append(removed, card)
			continue
		}
		kept = append(kept, card)
	}
	s.cards = kept
	return removed
}

func (s *CardStore) FindByID(id string) *Card {
	for _, card := range s.cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

func (s *CardStore) Contains(id string) bool {
	return s.FindByID(id) != nil
}

// All returns the cards in list order. The slice must not be modified.
func (s *CardStore) All() []*Card {
	return s.cards
}

func (s *CardStore) Len() int {
	return len(s.cards)
}

// Topmost returns the last card, in list order, whose rect passes hit.
func (s *CardStore) Topmost(hit func(*Card) bool) *Card {
	for i := len(s.cards) - 1; i >= 0; i-- {
		if hit(s.cards[i]) {
			return s.cards[i]
		}
	}
	return nil
}
