// Package board is the canvas engine: cards, connectors, selection, zoom,
// grid layout, pointer gestures and the clipboard.
//
// Every operation runs synchronously on the caller's goroutine. A Controller
// is not safe for concurrent use.
package board

import (
	"fmt"

	"go.uber.org/zap"
)

// Prompter is supplied by the host for blocking yes/no prompts and notices.
type Prompter interface {
	Confirm(message string) bool
	Notify(message string)
}

type silentPrompter struct{}

func (silentPrompter) Confirm(string) bool { return false }
func (silentPrompter) Notify(string)       {}

// State is everything the engine mutates. It is owned by one Controller.
type State struct {
	Cards      *CardStore
	Connectors *ConnectorStore
	Selection  *Selection
	Viewport   *Viewport
	Clipboard  []ClipboardEntry
}

func NewState() *State {
	return &State{
		Cards:      NewCardStore(),
		Connectors: NewConnectorStore(),
		Selection:  NewSelection(),
		Viewport:   NewViewport(),
	}
}

type Option func(*Controller)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithPrompter(p Prompter) Option {
	return func(c *Controller) {
		if p != nil {
			c.prompter = p
		}
	}
}

func WithKeyBindings(b KeyBindings) Option {
	return func(c *Controller) {
		c.bindings = b.Merge(DefaultKeyBindings())
	}
}

// WithBorderWidth sets the resize grab margin in unscaled pixels.
func WithBorderWidth(w float64) Option {
	return func(c *Controller) {
		if w > 0 {
			c.borderWidth = w
		}
	}
}

func WithGridSpacing(spacing float64) Option {
	return func(c *Controller) {
		c.state.Viewport.SetGridSpacing(spacing)
	}
}

const DefaultBorderWidth = 8.0

// Controller is the interaction state machine and the entry point for every
// structural edit.
type Controller struct {
	state       *State
	layout      *Layout
	prompter    Prompter
	bindings    KeyBindings
	borderWidth float64
	logger      *zap.Logger

	mode   Mode
	drag   dragGesture
	resize resizeGesture
	rect   rectGesture
}

func NewController(state *State, opts ...Option) *Controller {
	if state == nil {
		state = NewState()
	}
	c := &Controller{
		state:       state,
		layout:      NewLayout(state.Cards, state.Selection, state.Viewport),
		prompter:    silentPrompter{},
		bindings:    DefaultKeyBindings(),
		borderWidth: DefaultBorderWidth,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() *State   { return c.state }
func (c *Controller) Layout() *Layout { return c.layout }

func (c *Controller) recompute() {
	c.state.Connectors.RecomputeGeometry(c.state.Cards, c.state.Viewport.Scale())
}

// AddCard creates a card at the next cascading default position.
func (c *Controller) AddCard() *Card {
	card := c.state.Cards.Add(c.state.Viewport)
	c.logger.Debug("card added", zap.String("card", card.ID), zap.Float64("x", card.X), zap.Float64("y", card.Y))
	return card
}

// AddCardAt creates a card at a model-space position, snapped to the grid.
func (c *Controller) AddCardAt(x, y float64) *Card {
	card := c.state.Cards.AddAt(c.state.Viewport, x, y)
	c.logger.Debug("card added", zap.String("card", card.ID), zap.Float64("x", card.X), zap.Float64("y", card.Y))
	return card
}

func (c *Controller) SetCardText(id, text string) bool {
	card := c.state.Cards.FindByID(id)
	if card == nil {
		return false
	}
	card.Text = text
	return true
}

func (c *Controller) SetCardTitle(id, title string) bool {
	card := c.state.Cards.FindByID(id)
	if card == nil {
		return false
	}
	card.Title = title
	return true
}

// Zoom multiplies the scale. Out-of-range results are rejected.
func (c *Controller) Zoom(multiplier float64) bool {
	vp := c.state.Viewport
	if !vp.SetScale(multiplier) {
		c.logger.Debug("zoom rejected", zap.Float64("scale", vp.Scale()), zap.Float64("multiplier", multiplier))
		return false
	}
	c.layout.ResolveAll()
	c.recompute()
	c.logger.Debug("zoom", zap.Float64("scale", vp.Scale()))
	return true
}

// SetGridSpacing clamps and applies a new grid spacing, then re-lays out
// every card.
func (c *Controller) SetGridSpacing(spacing float64) float64 {
	applied := c.state.Viewport.SetGridSpacing(spacing)
	c.layout.ResolveAll()
	c.recompute()
	c.logger.Info("grid spacing changed", zap.Float64("requested", spacing), zap.Float64("applied", applied))
	return applied
}

// Copy snapshots the selection into the clipboard and returns how many cards
// were copied. An empty selection leaves the clipboard untouched.
func (c *Controller) Copy() int {
	selected := c.state.Selection.Cards(c.state.Cards)
	if len(selected) == 0 {
		return 0
	}
	c.state.Clipboard = Snapshot(selected, c.state.Connectors)
	c.logger.Debug("copied", zap.Int("cards", len(selected)))
	return len(selected)
}

// Paste rebuilds the clipboard contents as new cards.
func (c *Controller) Paste() []*Card {
	if len(c.state.Clipboard) == 0 {
		return nil
	}
	return c.PasteEntries(c.state.Clipboard)
}

// PasteEntries rebuilds entries as new cards, selects them and re-lays out
// the whole board.
func (c *Controller) PasteEntries(entries []ClipboardEntry) []*Card {
	if len(entries) == 0 {
		return nil
	}
	before := c.state.Connectors.Len()
	created := Reconstruct(entries, c.state.Cards, c.state.Connectors)

	sel := c.state.Selection
	sel.Clear()
	for _, card := range created {
		sel.Select(card.ID)
	}
	c.layout.ResolveAll()
	c.recompute()
	c.logger.Info("pasted",
		zap.Int("cards", len(created)),
		zap.Int("connectors", c.state.Connectors.Len()-before))
	return created
}

// Delete removes the selected cards after confirmation. It returns the
// number of cards removed. Nothing is removed while a drag or resize holds
// cards.
func (c *Controller) Delete() int {
	if c.mode != ModeIdle {
		c.logger.Debug("delete refused during gesture", zap.Stringer("mode", c.mode))
		return 0
	}
	sel := c.state.Selection
	ids := sel.IDs(c.state.Cards)
	if len(ids) == 0 {
		c.prompter.Notify("No cards selected")
		return 0
	}
	if !c.prompter.Confirm(deletePrompt(len(ids))) {
		c.logger.Debug("delete declined", zap.Int("cards", len(ids)))
		return 0
	}

	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	removed := c.state.Cards.Remove(func(card *Card) bool { return doomed[card.ID] })
	connectors := 0
	for _, card := range removed {
		connectors += c.state.Connectors.RemoveInvolving(card.ID)
		sel.Forget(card.ID)
	}
	c.recompute()
	c.logger.Info("deleted", zap.Int("cards", len(removed)), zap.Int("connectors", connectors))
	return len(removed)
}

func deletePrompt(n int) string {
	if n == 1 {
		return "Delete the selected card?"
	}
	return fmt.Sprintf("Delete %d selected cards?", n)
}

// Key dispatches a bound key press and returns the action taken.
func (c *Controller) Key(ev KeyEvent) Action {
	if ev.OnTextField {
		return ActionNone
	}
	action := c.bindings.Lookup(ev.Key)
	switch action {
	case ActionCopy:
		c.Copy()
	case ActionPaste:
		c.Paste()
	case ActionDelete:
		c.Delete()
	}
	return action
}
