package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/audio"
	"gridsnake/internal/game"
	"gridsnake/internal/gfx"
	"gridsnake/internal/platform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// GL and glfw calls must stay on the main OS thread.
	runtime.LockOSThread()

	window, err := platform.NewWindow(game.WindowWidth, game.WindowHeight, game.WindowTitle)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	rend, err := gfx.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.SetViewport(window.FramebufferSize())

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		} else {
			fmt.Fprintf(os.Stderr, "ignoring SNAKE_SEED=%q: %v\n", s, err)
		}
	}

	events := game.NewEventBus()
	if os.Getenv("SNAKE_MUTE") == "" {
		player, err := audio.NewPlayer(0.5)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			player.Subscribe(events)
		}
	}

	state := game.NewState(seed, events)
	game.NewEngine(window, platform.Clock{}, rend, state).Run()
	return nil
}
