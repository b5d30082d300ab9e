package game

import "github.com/go-gl/mathgl/mgl32"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Vec3 returns the colour normalized to [0,1] for the colour uniform.
func (c RGB) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0}
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Background RGB
	Border     RGB
	TileLight  RGB
	TileDark   RGB
	SnakeHead  RGB
	SnakeBody  RGB
	Fruit      RGB
	Overlay    RGB
	Title      RGB
	Text       RGB
	Score      RGB
	GameOver   RGB
}{
	Background: RGB{R: 12, G: 14, B: 18},
	Border:     RGB{R: 28, G: 32, B: 40},
	TileLight:  RGB{R: 58, G: 66, B: 79},
	TileDark:   RGB{R: 48, G: 55, B: 66},
	SnakeHead:  RGB{R: 140, G: 240, B: 110},
	SnakeBody:  RGB{R: 70, G: 180, B: 60},
	Fruit:      RGB{R: 230, G: 60, B: 50},
	Overlay:    RGB{R: 20, G: 10, B: 12},
	Title:      RGB{R: 100, G: 255, B: 100},
	Text:       RGB{R: 255, G: 255, B: 255},
	Score:      RGB{R: 255, G: 255, B: 100},
	GameOver:   RGB{R: 255, G: 80, B: 80},
}
