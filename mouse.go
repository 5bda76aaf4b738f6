package main

import (
	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
)

// pointerAt maps a terminal cell to the engine's screen space, aiming at the
// middle of the cell.
func pointerAt(col, row, panX, panY int, mods board.Modifiers) board.PointerEvent {
	return board.PointerEvent{
		X:         float64(col+panX)*cellWidth + cellWidth/2,
		Y:         float64(row+panY)*cellHeight + cellHeight/2,
		Modifiers: mods,
	}
}

func modifiersOf(msg tea.MouseMsg) board.Modifiers {
	return board.Modifiers{Alt: msg.Alt, Ctrl: msg.Ctrl, Shift: msg.Shift}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode == ModeConfirm || m.mode == ModeFileInput {
		return
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		m.handleWheel(msg)
		return
	}

	ev := pointerAt(msg.X, msg.Y, m.panX, m.panY, modifiersOf(msg))
	ev.OnTextField = m.onEditedCard(ev)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointer = pointerState{down: true}
		m.board.PointerDown(ev)
	case tea.MouseActionMotion:
		if !m.pointer.down {
			return
		}
		m.pointer.moved = true
		m.board.PointerMove(ev)
	case tea.MouseActionRelease:
		if !m.pointer.down {
			return
		}
		moved := m.pointer.moved
		m.pointer = pointerState{}
		m.board.PointerUp(ev)
		if !moved {
			m.board.Click(ev)
		}
	}
}

func (m *model) handleWheel(msg tea.MouseMsg) {
	delta := -1.0
	if msg.Button == tea.MouseButtonWheelDown {
		delta = 1
	}
	if msg.Ctrl {
		if !m.board.Wheel(board.WheelEvent{DeltaY: delta, Zoom: true}) {
			m.errorMessage = "Zoom limit reached"
		}
		return
	}
	m.panY += int(delta) * wheelPanRows
}

// onEditedCard reports whether the pointer is over the card whose text is
// being edited.
func (m *model) onEditedCard(ev board.PointerEvent) bool {
	if m.mode != ModeEditing {
		return false
	}
	card := m.board.CardAt(ev.X, ev.Y)
	return card != nil && card.ID == m.editCardID
}
