package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteCards ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

type EditTarget int

const (
	EditText EditTarget = iota
	EditTitle
)

// Terminal cells are mapped onto engine pixels at a fixed size.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const (
	wheelPanRows = 3
	panStep      = 4
)

var version = "dev"
