package board

// CardView is what the presentation layer needs to draw one card.
type CardView struct {
	ID         string
	Title      string
	Text       string
	Bounds     Rect // screen space
	Selected   bool
	Connecting bool
}

// View is a read-only snapshot of everything drawable.
type View struct {
	Cards         []CardView
	Connectors    []Path
	SelectionRect *Rect
	Scale         float64
	GridSpacing   float64
	Mode          Mode
}

func (c *Controller) View() View {
	vp := c.state.Viewport
	sel := c.state.Selection
	cards := c.state.Cards.All()

	v := View{
		Cards:       make([]CardView, 0, len(cards)),
		Connectors:  append([]Path(nil), c.state.Connectors.Paths()...),
		Scale:       vp.Scale(),
		GridSpacing: vp.GridSpacing(),
		Mode:        c.Mode(),
	}
	for _, card := range cards {
		v.Cards = append(v.Cards, CardView{
			ID:         card.ID,
			Title:      card.Title,
			Text:       card.Text,
			Bounds:     vp.ScreenRect(card.Bounds()),
			Selected:   sel.IsSelected(card.ID),
			Connecting: sel.ConnectingFrom() == card.ID,
		})
	}
	if r, ok := sel.Rect(); ok {
		v.SelectionRect = &r
	}
	return v
}
