package main

import (
	"testing"

	"cardboard/internal/board"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestModel returns a model holding only the welcome card at (40,40).
func newTestModel(t *testing.T) (model, *board.Card) {
	t.Helper()
	m := newModel(defaultConfig(), zap.NewNop())
	cards := m.board.State().Cards.All()
	require.Len(t, cards, 1)
	return m, cards[0]
}
