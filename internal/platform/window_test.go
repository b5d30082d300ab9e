package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want game.Key
	}{
		{glfw.KeyUp, game.KeyUp},
		{glfw.KeyW, game.KeyUp},
		{glfw.KeyDown, game.KeyDown},
		{glfw.KeyS, game.KeyDown},
		{glfw.KeyLeft, game.KeyLeft},
		{glfw.KeyA, game.KeyLeft},
		{glfw.KeyRight, game.KeyRight},
		{glfw.KeyD, game.KeyRight},
		{glfw.KeyR, game.KeyRestart},
		{glfw.KeyEnter, game.KeyRestart},
		{glfw.KeySpace, game.KeyRestart},
		{glfw.KeyEscape, game.KeyQuit},
		{glfw.KeyF1, game.KeyUnknown},
	}
	for _, tt := range tests {
		if got := mapKey(tt.in); got != tt.want {
			t.Errorf("mapKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapAction(t *testing.T) {
	if mapAction(glfw.Press) != game.Press || mapAction(glfw.Repeat) != game.Repeat || mapAction(glfw.Release) != game.Release {
		t.Fatal("action mapping mismatch")
	}
}
