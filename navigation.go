package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	if m.zPanMode {
		return m.handlePan(key, speed), nil
	}
	return m.handleNudge(key, speed), nil
}

func (m *model) handlePan(key string, speed int) tea.Model {
	step := panStep * speed
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= step
	case "l", "right", "L", "shift+right":
		m.panX += step
	case "k", "up", "K", "shift+up":
		m.panY -= step
	case "j", "down", "J", "shift+down":
		m.panY += step
	}
	return m
}

// handleNudge moves the selection by whole grid steps with the same
// collision and snapping rules as a mouse drag.
func (m *model) handleNudge(key string, speed int) tea.Model {
	dx, dy := nudgeVector(key)
	if dx == 0 && dy == 0 {
		return m
	}
	if m.board.State().Selection.Len() == 0 {
		m.errorMessage = "Nothing selected to move"
		return m
	}
	if !m.board.Nudge(dx*speed, dy*speed) {
		m.errorMessage = "Cannot move while a gesture is active"
	}
	return m
}

func nudgeVector(key string) (int, int) {
	switch key {
	case "h", "left", "H", "shift+left":
		return -1, 0
	case "l", "right", "L", "shift+right":
		return 1, 0
	case "k", "up", "K", "shift+up":
		return 0, -1
	case "j", "down", "J", "shift+down":
		return 0, 1
	}
	return 0, 0
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
