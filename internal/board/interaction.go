package board

import (
	"math"

	"go.uber.org/zap"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeRectSelecting
	ModeConnecting
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeRectSelecting:
		return "rect-selecting"
	case ModeConnecting:
		return "connecting"
	}
	return "unknown"
}

// ResizeDirection is a set of card edges being dragged.
type ResizeDirection uint8

const (
	ResizeTop ResizeDirection = 1 << iota
	ResizeBottom
	ResizeLeft
	ResizeRight

	ResizeNone        ResizeDirection = 0
	ResizeTopLeft                     = ResizeTop | ResizeLeft
	ResizeTopRight                    = ResizeTop | ResizeRight
	ResizeBottomLeft                  = ResizeBottom | ResizeLeft
	ResizeBottomRight                 = ResizeBottom | ResizeRight
)

func (d ResizeDirection) String() string {
	switch d {
	case ResizeNone:
		return "none"
	case ResizeTop:
		return "top"
	case ResizeBottom:
		return "bottom"
	case ResizeLeft:
		return "left"
	case ResizeRight:
		return "right"
	case ResizeTopLeft:
		return "top-left"
	case ResizeTopRight:
		return "top-right"
	case ResizeBottomLeft:
		return "bottom-left"
	case ResizeBottomRight:
		return "bottom-right"
	}
	return "unknown"
}

func (d ResizeDirection) has(edge ResizeDirection) bool { return d&edge != 0 }

// DetectResize classifies a screen-space point against a card's rendered
// rect. Edge bands are margin wide and reach margin outside the rect;
// a point in two adjacent bands is a corner.
func DetectResize(r Rect, x, y, margin float64) ResizeDirection {
	withinX := x >= r.Left()-margin && x <= r.Right()+margin
	withinY := y >= r.Top()-margin && y <= r.Bottom()+margin
	if !withinX || !withinY {
		return ResizeNone
	}
	var d ResizeDirection
	switch {
	case math.Abs(y-r.Top()) <= margin:
		d |= ResizeTop
	case math.Abs(y-r.Bottom()) <= margin:
		d |= ResizeBottom
	}
	switch {
	case math.Abs(x-r.Left()) <= margin:
		d |= ResizeLeft
	case math.Abs(x-r.Right()) <= margin:
		d |= ResizeRight
	}
	return d
}

type dragGesture struct {
	cards   []*Card
	offsets []Point
}

type resizeGesture struct {
	card      *Card
	direction ResizeDirection
	startX    float64
	startY    float64
	initial   Rect
}

type rectGesture struct {
	startX   float64
	startY   float64
	additive bool
}

// Mode reports the active gesture, or ModeConnecting while a connect-toggle
// is pending and nothing else is running.
func (c *Controller) Mode() Mode {
	if c.mode == ModeIdle && c.state.Selection.ConnectingFrom() != "" {
		return ModeConnecting
	}
	return c.mode
}

func (c *Controller) margin() float64 {
	return c.borderWidth * c.state.Viewport.Scale()
}

// CardAt returns the topmost card whose rendered rect, grown by the resize
// margin, contains the screen point.
func (c *Controller) CardAt(x, y float64) *Card {
	vp := c.state.Viewport
	margin := c.margin()
	return c.state.Cards.Topmost(func(card *Card) bool {
		return vp.ScreenRect(card.Bounds()).Inflate(margin).Contains(x, y)
	})
}

// PointerDown classifies and starts a gesture.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.mode != ModeIdle {
		return
	}
	card := c.CardAt(ev.X, ev.Y)
	if card == nil {
		if ev.Modifiers.Alt || ev.OnTextField {
			return
		}
		c.beginRectSelect(ev)
		return
	}
	// Alt defers to Click for connect-toggle.
	if ev.OnTextField || ev.Modifiers.Alt {
		return
	}

	sel := c.state.Selection
	if ev.Modifiers.Additive() {
		sel.ToggleMembership(card.ID)
	} else if !sel.IsSelected(card.ID) {
		sel.Clear()
		sel.Select(card.ID)
	}

	screen := c.state.Viewport.ScreenRect(card.Bounds())
	if dir := DetectResize(screen, ev.X, ev.Y, c.margin()); dir != ResizeNone {
		c.beginResize(card, dir, ev)
		return
	}
	if !sel.IsSelected(card.ID) {
		return
	}
	c.beginDrag(ev)
}

// PointerMove feeds one sample to the active gesture. Idle moves are ignored.
func (c *Controller) PointerMove(ev PointerEvent) {
	switch c.mode {
	case ModeDragging:
		c.moveDrag(ev)
	case ModeResizing:
		c.moveResize(ev)
	case ModeRectSelecting:
		c.moveRectSelect(ev)
	}
}

// PointerUp commits the active gesture and returns to idle.
func (c *Controller) PointerUp(ev PointerEvent) {
	switch c.mode {
	case ModeDragging:
		for _, card := range c.drag.cards {
			c.layout.SnapCard(card)
		}
		c.recompute()
		c.logger.Debug("drag committed", zap.Int("cards", len(c.drag.cards)))
		c.drag = dragGesture{}
	case ModeResizing:
		c.layout.SnapCardExtent(c.resize.card)
		c.recompute()
		c.logger.Debug("resize committed",
			zap.String("card", c.resize.card.ID),
			zap.Float64("width", c.resize.card.Width),
			zap.Float64("height", c.resize.card.Height))
		c.resize = resizeGesture{}
	case ModeRectSelecting:
		c.state.Selection.ClearRect()
		c.rect = rectGesture{}
	}
	c.mode = ModeIdle
}

// Click handles Alt-clicks on cards as connect-toggle.
func (c *Controller) Click(ev PointerEvent) {
	if !ev.Modifiers.Alt || ev.OnTextField {
		return
	}
	card := c.CardAt(ev.X, ev.Y)
	if card == nil {
		return
	}
	sel := c.state.Selection
	from := sel.ConnectingFrom()
	switch {
	case from == "":
		sel.SetConnectingFrom(card.ID)
		c.logger.Debug("connect started", zap.String("from", card.ID))
	case from == card.ID:
		sel.ClearConnecting()
		c.logger.Debug("connect cancelled", zap.String("from", card.ID))
	default:
		linked := c.state.Connectors.Toggle(from, card.ID)
		sel.ClearConnecting()
		c.recompute()
		c.logger.Debug("connector toggled",
			zap.String("from", from), zap.String("to", card.ID), zap.Bool("linked", linked))
	}
}

// Wheel zooms when the host marks the wheel sample as a zoom request.
func (c *Controller) Wheel(ev WheelEvent) bool {
	if !ev.Zoom || ev.DeltaY == 0 {
		return false
	}
	multiplier := ZoomInMultiplier
	if ev.DeltaY > 0 {
		multiplier = ZoomOutMultiplier
	}
	return c.Zoom(multiplier)
}

// Nudge moves the whole selection by whole grid steps, pushing it clear of
// unselected cards the way a drag does, and commits with a snap. It is
// refused while a gesture is active or nothing is selected.
func (c *Controller) Nudge(stepsX, stepsY int) bool {
	if c.mode != ModeIdle {
		return false
	}
	cards := c.state.Selection.Cards(c.state.Cards)
	if len(cards) == 0 || (stepsX == 0 && stepsY == 0) {
		return false
	}
	grid := c.state.Viewport.GridSpacing()
	dx, dy := float64(stepsX)*grid, float64(stepsY)*grid
	for _, card := range cards {
		card.X, card.Y = c.layout.Resolve(card, card.X+dx, card.Y+dy)
		c.layout.SnapCard(card)
	}
	c.recompute()
	c.logger.Debug("nudged", zap.Int("cards", len(cards)), zap.Int("dx", stepsX), zap.Int("dy", stepsY))
	return true
}

func (c *Controller) beginDrag(ev PointerEvent) {
	vp := c.state.Viewport
	cards := c.state.Selection.Cards(c.state.Cards)
	offsets := make([]Point, len(cards))
	for i, card := range cards {
		offsets[i] = Point{X: ev.X - vp.ToScreen(card.X), Y: ev.Y - vp.ToScreen(card.Y)}
	}
	c.drag = dragGesture{cards: cards, offsets: offsets}
	c.mode = ModeDragging
	c.logger.Debug("drag started", zap.Int("cards", len(cards)))
}

func (c *Controller) moveDrag(ev PointerEvent) {
	scale := c.state.Viewport.Scale()
	for i, card := range c.drag.cards {
		off := c.drag.offsets[i]
		x, y := c.layout.Resolve(card, (ev.X-off.X)/scale, (ev.Y-off.Y)/scale)
		card.X, card.Y = x, y
	}
	c.recompute()
}

func (c *Controller) beginResize(card *Card, dir ResizeDirection, ev PointerEvent) {
	c.resize = resizeGesture{
		card:      card,
		direction: dir,
		startX:    ev.X,
		startY:    ev.Y,
		initial:   card.Bounds(),
	}
	c.mode = ModeResizing
	c.logger.Debug("resize started", zap.String("card", card.ID), zap.Stringer("direction", dir))
}

func (c *Controller) moveResize(ev PointerEvent) {
	vp := c.state.Viewport
	g := c.resize
	card := g.card
	dx := (ev.X - g.startX) / vp.Scale()
	dy := (ev.Y - g.startY) / vp.Scale()
	start := g.initial

	if g.direction.has(ResizeRight) {
		card.Width = vp.SnapExtent(start.Width+dx, MinCardWidth)
	}
	if g.direction.has(ResizeLeft) {
		card.Width = vp.SnapExtent(start.Width-dx, MinCardWidth)
		card.X = start.Right() - card.Width
	}
	if g.direction.has(ResizeBottom) {
		card.Height = vp.SnapExtent(start.Height+dy, MinCardHeight)
	}
	if g.direction.has(ResizeTop) {
		card.Height = vp.SnapExtent(start.Height-dy, MinCardHeight)
		card.Y = start.Bottom() - card.Height
	}
	c.recompute()
}

func (c *Controller) beginRectSelect(ev PointerEvent) {
	additive := ev.Modifiers.Additive()
	if !additive {
		c.state.Selection.Clear()
	}
	c.rect = rectGesture{startX: ev.X, startY: ev.Y, additive: additive}
	c.state.Selection.SetRect(NormalizedRect(ev.X, ev.Y, ev.X, ev.Y))
	c.mode = ModeRectSelecting
}

func (c *Controller) moveRectSelect(ev PointerEvent) {
	r := NormalizedRect(c.rect.startX, c.rect.startY, ev.X, ev.Y)
	sel := c.state.Selection
	sel.SetRect(r)
	sel.ApplyRect(r, c.state.Cards, c.state.Viewport, c.rect.additive || ev.Modifiers.Additive())
}
