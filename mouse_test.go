package main

import (
	"testing"

	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPointerAt(t *testing.T) {
	ev := pointerAt(2, 1, 0, 0, board.Modifiers{})
	assert.Equal(t, 20.0, ev.X)
	assert.Equal(t, 24.0, ev.Y)

	ev = pointerAt(2, 1, 3, -1, board.Modifiers{Alt: true})
	assert.Equal(t, 44.0, ev.X)
	assert.Equal(t, 8.0, ev.Y)
	assert.True(t, ev.Modifiers.Alt)
}

func TestHandleMouse_DragMovesCard(t *testing.T) {
	m, card := newTestModel(t)

	m.handleMouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, board.ModeDragging, m.board.Mode())
	m.handleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.handleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, board.ModeIdle, m.board.Mode())
	assert.Equal(t, 120.0, card.X)
	assert.Equal(t, 40.0, card.Y)
	assert.True(t, m.board.State().Selection.IsSelected(card.ID))
}

func TestHandleMouse_AltClickStartsLink(t *testing.T) {
	m, card := newTestModel(t)

	m.handleMouse(tea.MouseMsg{X: 10, Y: 5, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.handleMouse(tea.MouseMsg{X: 10, Y: 5, Alt: true, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, card.ID, m.board.State().Selection.ConnectingFrom())
	assert.Equal(t, board.ModeConnecting, m.board.Mode())
}

func TestHandleMouse_MotionWithoutPressIgnored(t *testing.T) {
	m, card := newTestModel(t)

	m.handleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion})

	assert.Equal(t, board.ModeIdle, m.board.Mode())
	assert.Equal(t, 40.0, card.X)
}

func TestHandleMouse_Wheel(t *testing.T) {
	m, _ := newTestModel(t)

	m.handleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelPanRows, m.panY)
	assert.Equal(t, 1.0, m.board.State().Viewport.Scale())

	m.handleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress, Ctrl: true})
	assert.InDelta(t, 1.1, m.board.State().Viewport.Scale(), 1e-9)
}

func TestHandleMouse_EditedCardIsTextField(t *testing.T) {
	m, card := newTestModel(t)
	m.board.State().Selection.Select(card.ID)
	m.startEditing(EditText)

	m.handleMouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, board.ModeIdle, m.board.Mode(), "presses inside the edited card do not start a drag")
}
