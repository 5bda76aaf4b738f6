package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const gridStep = 10

func (m model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""
	sel := m.board.State().Selection
	cardsBefore := m.board.State().Cards.Len()

	switch m.board.Key(board.KeyEvent{Key: key}) {
	case board.ActionCopy:
		m.afterCopy()
		return m, nil
	case board.ActionPaste:
		if len(m.board.State().Clipboard) == 0 {
			m.errorMessage = "Clipboard is empty"
		} else {
			m.successMessage = fmt.Sprintf("Pasted %d cards", m.board.State().Cards.Len()-cardsBefore)
		}
		return m, nil
	case board.ActionDelete:
		m.collectPrompts()
		return m, nil
	}

	switch key {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			m.confirmText = "Quit cardboard?"
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "esc":
		sel.Clear()
		sel.ClearConnecting()
	case "b":
		card := m.board.AddCard()
		sel.Clear()
		sel.Select(card.ID)
	case "d":
		m.board.Delete()
		m.collectPrompts()
	case "e":
		m.startEditing(EditText)
	case "t":
		m.startEditing(EditTitle)
	case "a":
		m.linkSelected()
	case "P":
		m.pasteFromSystem()
	case "S":
		m.mode = ModeFileInput
		m.filename = "board.png"
	case "+", "=":
		if !m.board.Zoom(board.ZoomInMultiplier) {
			m.errorMessage = "Zoom limit reached"
		}
	case "-":
		if !m.board.Zoom(board.ZoomOutMultiplier) {
			m.errorMessage = "Zoom limit reached"
		}
	case "[":
		m.board.SetGridSpacing(m.board.State().Viewport.GridSpacing() - gridStep)
	case "]":
		m.board.SetGridSpacing(m.board.State().Viewport.GridSpacing() + gridStep)
	case "z":
		m.zPanMode = !m.zPanMode
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) afterCopy() {
	state := m.board.State()
	if state.Selection.Len() == 0 {
		m.errorMessage = "No cards selected"
		return
	}
	if err := copyToSystemClipboard(state.Clipboard); err != nil {
		m.logger.Warn("system clipboard unavailable", zap.Error(err))
	}
	m.successMessage = fmt.Sprintf("Copied %d cards", len(state.Clipboard))
}

func (m *model) pasteFromSystem() {
	entries, err := readClipboardEntries()
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	created := m.board.PasteEntries(entries)
	m.successMessage = fmt.Sprintf("Pasted %d cards", len(created))
}

// linkSelected drives a connect-toggle from the keyboard by Alt-clicking
// the centre of the selected card. A pending source stays selected, so it is
// skipped unless it is the only card left, which cancels the link.
func (m *model) linkSelected() {
	state := m.board.State()
	from := state.Selection.ConnectingFrom()
	var targets []*board.Card
	for _, card := range state.Selection.Cards(state.Cards) {
		if card.ID != from {
			targets = append(targets, card)
		}
	}
	if len(targets) == 0 && from != "" {
		targets = append(targets, state.Cards.FindByID(from))
	}
	if len(targets) != 1 {
		m.errorMessage = "Select exactly one card to link"
		return
	}
	vp := state.Viewport
	cx, cy := targets[0].Center()
	m.board.Click(board.PointerEvent{
		X:         vp.ToScreen(cx),
		Y:         vp.ToScreen(cy),
		Modifiers: board.Modifiers{Alt: true},
	})
}

func (m *model) startEditing(target EditTarget) {
	state := m.board.State()
	selected := state.Selection.Cards(state.Cards)
	if len(selected) != 1 {
		m.errorMessage = "Select exactly one card to edit"
		return
	}
	card := selected[0]
	m.mode = ModeEditing
	m.editCardID = card.ID
	m.editTarget = target
	m.editText = card.Text
	if target == EditTitle {
		m.editText = card.Title
	}
	m.editCursorPos = len([]rune(m.editText))
}

func (m *model) finishEditing() {
	if m.editTarget == EditTitle {
		m.board.SetCardTitle(m.editCardID, m.editText)
	} else {
		m.board.SetCardText(m.editCardID, m.editText)
	}
	m.mode = ModeNormal
	m.editCardID = ""
	m.editText = ""
	m.editCursorPos = 0
}

func (m *model) insertEditText(s string) {
	runes := []rune(m.editText)
	if m.editCursorPos > len(runes) {
		m.editCursorPos = len(runes)
	}
	inserted := []rune(s)
	runes = append(runes[:m.editCursorPos], append(inserted, runes[m.editCursorPos:]...)...)
	m.editText = string(runes)
	m.editCursorPos += len(inserted)
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.bindings.Lookup(key) == board.ActionPaste {
		text, err := readPlainClipboard()
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.editTarget == EditTitle {
			text = strings.ReplaceAll(text, "\n", " ")
		}
		m.insertEditText(text)
		return m, nil
	}

	switch key {
	case "esc":
		m.finishEditing()
	case "enter":
		if m.editTarget == EditTitle {
			m.finishEditing()
		} else {
			m.insertEditText("\n")
		}
	case "backspace":
		if m.editCursorPos > 0 {
			runes := []rune(m.editText)
			m.editText = string(append(runes[:m.editCursorPos-1], runes[m.editCursorPos:]...))
			m.editCursorPos--
		}
	case "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case "right":
		if m.editCursorPos < len([]rune(m.editText)) {
			m.editCursorPos++
		}
	default:
		switch msg.Type {
		case tea.KeySpace:
			m.insertEditText(" ")
		case tea.KeyRunes:
			m.insertEditText(string(msg.Runes))
		}
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.filename = ""
	case "enter":
		if m.filename == "" {
			return m, nil
		}
		if !strings.HasSuffix(strings.ToLower(m.filename), ".png") {
			m.filename += ".png"
		}
		path := m.config.GetSavePath(m.filename)
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			m.confirmText = fmt.Sprintf("File %s already exists. Overwrite?", m.filename)
			return m, nil
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			m.mode = ModeNormal
			m.errorMessage = err.Error()
			return m, nil
		}
		m.exportPNG(path)
	case "backspace":
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filename += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) exportPNG(path string) {
	m.mode = ModeNormal
	if err := ExportToPNG(m.board.View(), path); err != nil {
		m.errorMessage = err.Error()
		m.logger.Warn("png export failed", zap.String("path", path), zap.Error(err))
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", path)
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteCards:
			m.prompter.armed = true
			n := m.board.Delete()
			m.prompter.armed = false
			m.successMessage = fmt.Sprintf("Deleted %d cards", n)
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.exportPNG(m.config.GetSavePath(m.filename))
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}
