package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

// Window wraps a fixed-size glfw window with a current GL 4.1 core context.
// Must be created and used from the OS-locked main thread.
type Window struct {
	win *glfw.Window
}

// NewWindow initializes glfw and opens the window. Call Destroy to release
// both the window and glfw.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	return &Window{win: win}, nil
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *Window) PollEvents() { glfw.PollEvents() }
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// SetKeyHandler forwards glfw key events, translated to game keys.
// Unmapped keys are dropped.
func (w *Window) SetKeyHandler(fn func(game.Key, game.Action)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := mapKey(key)
		if k == game.KeyUnknown {
			return
		}
		fn(k, mapAction(action))
	})
}

func mapKey(key glfw.Key) game.Key {
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		return game.KeyUp
	case glfw.KeyDown, glfw.KeyS:
		return game.KeyDown
	case glfw.KeyLeft, glfw.KeyA:
		return game.KeyLeft
	case glfw.KeyRight, glfw.KeyD:
		return game.KeyRight
	case glfw.KeyR, glfw.KeyEnter, glfw.KeySpace:
		return game.KeyRestart
	case glfw.KeyEscape:
		return game.KeyQuit
	}
	return game.KeyUnknown
}

func mapAction(action glfw.Action) game.Action {
	switch action {
	case glfw.Press:
		return game.Press
	case glfw.Repeat:
		return game.Repeat
	}
	return game.Release
}

// Clock reads glfw's monotonic timer.
type Clock struct{}

func (Clock) Now() float64 { return glfw.GetTime() }
