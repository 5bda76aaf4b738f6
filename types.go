package main

import (
	"cardboard/internal/board"

	"go.uber.org/zap"
)

type model struct {
	width  int
	height int
	panX   int
	panY   int

	mode          Mode
	zPanMode      bool
	help          bool
	confirmAction ConfirmAction
	confirmText   string

	board    *board.Controller
	prompter *tuiPrompter
	bindings board.KeyBindings
	config   *Config
	logger   *zap.Logger

	pointer pointerState

	editCardID    string
	editTarget    EditTarget
	editText      string
	editCursorPos int

	filename       string
	errorMessage   string
	successMessage string
}

type pointerState struct {
	down  bool
	moved bool
}
