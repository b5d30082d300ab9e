package game

import "github.com/go-gl/mathgl/mgl32"

// Window is the windowing/context collaborator. Key events registered with
// SetKeyHandler are delivered synchronously from PollEvents.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	SetKeyHandler(func(Key, Action))
}

// Clock returns monotonic time in seconds.
type Clock interface {
	Now() float64
}

// Surface is a QuadDrawer that can also clear the framebuffer.
type Surface interface {
	QuadDrawer
	Clear(color mgl32.Vec3)
}

// Engine is the frame driver: poll, advance, render, present.
type Engine struct {
	window   Window
	clock    Clock
	surface  Surface
	state    *State
	keyboard Keyboard

	last    float64
	started bool
	frames  uint64
}

func NewEngine(window Window, clock Clock, surface Surface, state *State) *Engine {
	e := &Engine{
		window:  window,
		clock:   clock,
		surface: surface,
		state:   state,
	}
	window.SetKeyHandler(e.HandleKey)
	return e
}

// HandleKey routes a key event. Only fresh presses reach the state machine.
func (e *Engine) HandleKey(key Key, action Action) {
	if !e.keyboard.JustPressed(key, action) {
		return
	}
	if key == KeyQuit {
		e.window.SetShouldClose(true)
		return
	}
	e.state.SetDirection(key)
}

// Run drives frames until the window asks to close.
func (e *Engine) Run() {
	for !e.window.ShouldClose() {
		e.Frame()
	}
}

// Frame runs one iteration of the loop.
func (e *Engine) Frame() {
	e.window.PollEvents()

	now := e.clock.Now()
	dt := 0.0
	if e.started {
		dt = clampF(now-e.last, 0, MaxFrameDelta)
	}
	e.last = now
	e.started = true

	if e.state.Phase() == PhasePlaying {
		e.state.Tick(dt)
	}

	e.surface.Clear(Palette.Background.Vec3())
	RenderState(e.surface, e.state)
	e.window.SwapBuffers()
	e.frames++
}

// Frames returns the number of frames presented so far.
func (e *Engine) Frames() uint64 { return e.frames }

func (e *Engine) State() *State { return e.state }
