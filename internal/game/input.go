package game

// Key is a platform-neutral key identifier. The platform layer maps its own
// key codes onto these before calling into the engine.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
	KeyQuit
)

// Direction returns the heading a key selects, or DirNone.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return DirUp
	case KeyDown:
		return DirDown
	case KeyLeft:
		return DirLeft
	case KeyRight:
		return DirRight
	}
	return DirNone
}

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Keyboard stores which keys are currently held.
type Keyboard struct {
	keys [256]bool
}

// SetKeyPressed records the held state of key. Out-of-range keys are ignored.
func (kb *Keyboard) SetKeyPressed(key Key, pressed bool) {
	if key < 0 || int(key) >= len(kb.keys) {
		return
	}
	kb.keys[key] = pressed
}

func (kb *Keyboard) IsKeyPressed(key Key) bool {
	if key < 0 || int(key) >= len(kb.keys) {
		return false
	}
	return kb.keys[key]
}

// JustPressed records the event and reports whether it is a fresh press:
// key repeats and presses of an already-held key return false.
func (kb *Keyboard) JustPressed(key Key, action Action) bool {
	switch action {
	case Press:
		jp := !kb.IsKeyPressed(key)
		kb.SetKeyPressed(key, true)
		return jp
	case Release:
		kb.SetKeyPressed(key, false)
	}
	return false
}
