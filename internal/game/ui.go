package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderBoard draws the border and the checkerboard. The border is a single
// full-screen quad that shows through the seams between inset cells.
func RenderBoard(q QuadDrawer, dim bool) {
	q.DrawQuad(mgl32.Vec2{0, 0}, mgl32.Vec2{2, 2}, Palette.Border.Vec3())
	light, dark := Palette.TileLight, Palette.TileDark
	if dim {
		light, dark = light.Mul(110), dark.Mul(110)
	}
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			col := dark
			if (x+y)%2 == 0 {
				col = light
			}
			DrawCell(q, GridCell{X: x, Y: y}, col)
		}
	}
}

// RenderState draws one frame for the current phase of s.
func RenderState(q QuadDrawer, s *State) {
	phase := s.Phase()
	RenderBoard(q, phase == PhaseGameOver)

	switch phase {
	case PhaseNotStarted:
		DrawText(q, "SNAKE", mgl32.Vec2{0, 0.35}, TitleScale, Palette.Title)
		DrawText(q, "PRESS AN ARROW KEY", mgl32.Vec2{0, -0.1}, BodyScale, Palette.Text)
		DrawText(q, "EAT FRUIT TO GROW", mgl32.Vec2{0, -0.3}, HUDScale, Palette.Score)

	case PhasePlaying:
		renderSnake(q, s)
		renderHUD(q, s)

	case PhaseGameOver:
		renderSnake(q, s)
		q.DrawQuad(mgl32.Vec2{0, 0.05}, mgl32.Vec2{1.7, 0.8}, Palette.Overlay.Vec3())
		DrawText(q, "GAME OVER", mgl32.Vec2{0, 0.2}, 0.03, Palette.GameOver)
		DrawText(q, fmt.Sprintf("SCORE: %d", s.Score()), mgl32.Vec2{0, -0.05}, BodyScale, Palette.Score)
		DrawText(q, "PRESS R TO RESTART", mgl32.Vec2{0, -0.22}, HUDScale, Palette.Text)
	}
}

func renderSnake(q QuadDrawer, s *State) {
	DrawCell(q, s.Fruit(), Palette.Fruit)
	body := s.Snake()
	for i := len(body) - 1; i >= 1; i-- {
		DrawCell(q, body[i], Palette.SnakeBody)
	}
	DrawCell(q, body[0], Palette.SnakeHead)
}

// renderHUD draws the score along the top row of the board.
func renderHUD(q QuadDrawer, s *State) {
	DrawText(q, fmt.Sprintf("SCORE %d", s.Score()), mgl32.Vec2{0, 1 - CellHeight/2}, HUDScale, Palette.Score)
}
