package board

// Selection tracks selected cards, the pending connect source and the
// rectangle of an active rectangle-select gesture.
type Selection struct {
	selected       map[string]bool
	connectingFrom string
	rect           *Rect
}

func NewSelection() *Selection {
	return &Selection{selected: make(map[string]bool)}
}

// Select adds id unless it is the pending connect source.
func (s *Selection) Select(id string) {
	if id == s.connectingFrom {
		return
	}
	s.selected[id] = true
}

func (s *Selection) Deselect(id string) {
	delete(s.selected, id)
}

// Clear empties the selection. A pending connect source survives.
func (s *Selection) Clear() {
	s.selected = make(map[string]bool)
	if s.connectingFrom != "" {
		s.selected[s.connectingFrom] = true
	}
}

// ToggleMembership adds id if absent and removes it if present.
func (s *Selection) ToggleMembership(id string) {
	if s.selected[id] {
		delete(s.selected, id)
		return
	}
	s.Select(id)
}

func (s *Selection) IsSelected(id string) bool {
	return s.selected[id]
}

func (s *Selection) Len() int {
	return len(s.selected)
}

// IDs returns the selected ids in card list order.
func (s *Selection) IDs(cards *CardStore) []string {
	ids := make([]string, 0, len(s.selected))
	for _, card := range cards.All() {
		if s.selected[card.ID] {
			ids = append(ids, card.ID)
		}
	}
	return ids
}

// Cards returns the selected cards in card list order.
func (s *Selection) Cards(cards *CardStore) []*Card {
	out := make([]*Card, 0, len(s.selected))
	for _, card := range cards.All() {
		if s.selected[card.ID] {
			out = append(out, card)
		}
	}
	return out
}

func (s *Selection) ConnectingFrom() string {
	return s.connectingFrom
}

func (s *Selection) SetConnectingFrom(id string) {
	s.connectingFrom = id
}

func (s *Selection) ClearConnecting() {
	s.connectingFrom = ""
}

// Rect returns the active selection rectangle in screen space.
func (s *Selection) Rect() (Rect, bool) {
	if s.rect == nil {
		return Rect{}, false
	}
	return *s.rect, true
}

func (s *Selection) SetRect(r Rect) {
	s.rect = &r
}

func (s *Selection) ClearRect() {
	s.rect = nil
}

// ApplyRect re-evaluates membership against a screen-space rectangle.
// Cards hit are added. Cards missed are dropped unless additive is set or
// they are the pending connect source.
func (s *Selection) ApplyRect(r Rect, cards *CardStore, vp *Viewport, additive bool) {
	for _, card := range cards.All() {
		if Overlaps(vp.ScreenRect(card.Bounds()), r) {
			if !s.selected[card.ID] {
				s.Select(card.ID)
			}
			continue
		}
		if additive || card.ID == s.connectingFrom {
			continue
		}
		delete(s.selected, card.ID)
	}
}

// Forget drops every reference to id, including a pending connect source.
func (s *Selection) Forget(id string) {
	delete(s.selected, id)
	if s.connectingFrom == id {
		s.connectingFrom = ""
	}
}
