package board

// Modifiers are the modifier keys held during an event.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	Meta  bool
}

// Additive reports whether the modifiers extend a selection instead of
// replacing it.
func (m Modifiers) Additive() bool {
	return m.Ctrl || m.Shift || m.Meta
}

// PointerEvent is a decoded pointer sample in screen space.
type PointerEvent struct {
	X         float64
	Y         float64
	Modifiers Modifiers
	// OnTextField marks events whose target is a text input; cards ignore them.
	OnTextField bool
}

// WheelEvent is a decoded wheel sample. DeltaY > 0 scrolls down.
type WheelEvent struct {
	DeltaY float64
	Zoom   bool
}

// KeyEvent is a decoded key press. Key is a chord such as "ctrl+c".
type KeyEvent struct {
	Key         string
	OnTextField bool
}
