package main

import (
	"fmt"
	"strings"
	"unicode"

	"cardboard/internal/board"

	"github.com/atotto/clipboard"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// copyToSystemClipboard publishes the engine clipboard so another instance
// can paste it.
func copyToSystemClipboard(entries []board.ClipboardEntry) error {
	data, err := board.EncodeClipboard(entries)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

func readSystemClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return newlines.Replace(text), nil
}

// readClipboardEntries decodes a card document copied by another instance.
// The text goes to the decoder as is apart from line endings.
func readClipboardEntries() ([]board.ClipboardEntry, error) {
	text, err := readSystemClipboard()
	if err != nil {
		return nil, err
	}
	return board.DecodeClipboard([]byte(text))
}

// readPlainClipboard returns clipboard text suitable for typing into a card.
func readPlainClipboard() (string, error) {
	text, err := readSystemClipboard()
	if err != nil {
		return "", err
	}
	return editableText(text), nil
}

// editableText keeps newlines, turns tabs into spaces and drops every other
// control character.
func editableText(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, newlines.Replace(text))
}
