package board

import "strings"

// Action is a keyboard-triggered engine command.
type Action int

const (
	ActionNone Action = iota
	ActionCopy
	ActionPaste
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionPaste:
		return "paste"
	case ActionDelete:
		return "delete"
	}
	return "none"
}

// KeyBindings maps trigger chords to actions. Several chords may share an
// action so that no single keyboard layout is assumed.
type KeyBindings struct {
	Copy   []string `yaml:"copy"`
	Paste  []string `yaml:"paste"`
	Delete []string `yaml:"delete"`
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Copy:   []string{"ctrl+c", "meta+c", "ctrl+insert"},
		Paste:  []string{"ctrl+v", "meta+v", "shift+insert"},
		Delete: []string{"delete", "backspace"},
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (b KeyBindings) Lookup(key string) Action {
	key = normalizeChord(key)
	for _, t := range b.Copy {
		if normalizeChord(t) == key {
			return ActionCopy
		}
	}
	for _, t := range b.Paste {
		if normalizeChord(t) == key {
			return ActionPaste
		}
	}
	for _, t := range b.Delete {
		if normalizeChord(t) == key {
			return ActionDelete
		}
	}
	return ActionNone
}

// Merge fills empty lists in b from defaults.
func (b KeyBindings) Merge(defaults KeyBindings) KeyBindings {
	if len(b.Copy) == 0 {
		b.Copy = defaults.Copy
	}
	if len(b.Paste) == 0 {
		b.Paste = defaults.Paste
	}
	if len(b.Delete) == 0 {
		b.Delete = defaults.Delete
	}
	return b
}

func normalizeChord(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "cmd+", "meta+")
	return strings.ReplaceAll(key, " ", "")
}
