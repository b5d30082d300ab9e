package game

import "github.com/go-gl/mathgl/mgl32"

// QuadDrawer issues one draw of the shared unit quad (side 1, centred on the
// origin) translated by offset and scaled by scale, in device space.
type QuadDrawer interface {
	DrawQuad(offset, scale mgl32.Vec2, color mgl32.Vec3)
}

// CellTransform maps a grid cell to the device-space centre and size of its quad.
func CellTransform(c GridCell) (offset, scale mgl32.Vec2) {
	offset = mgl32.Vec2{
		-1 + float32(c.X)*CellWidth + CellWidth/2,
		-1 + float32(c.Y)*CellHeight + CellHeight/2,
	}
	scale = mgl32.Vec2{CellInset * CellWidth, CellInset * CellHeight}
	return offset, scale
}

// DrawCell draws one board cell.
func DrawCell(q QuadDrawer, c GridCell, col RGB) {
	offset, scale := CellTransform(c)
	q.DrawQuad(offset, scale, col.Vec3())
}

// TextWidth returns the device-space width of text at the given pixel scale.
// Characters are 5 pixels wide with one pixel of spacing between them.
func TextWidth(text string, scale float32) float32 {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	charW := GlyphSize * scale
	return float32(n)*(charW+scale) - scale
}

// DrawText draws text horizontally centred on anchor.X with the glyph block's
// vertical centre at anchor.Y. Every lit font pixel is its own quad.
func DrawText(q QuadDrawer, text string, anchor mgl32.Vec2, scale float32, col RGB) {
	charW := GlyphSize * scale
	charH := GlyphSize * scale
	advance := charW + scale
	startX := anchor.X() - TextWidth(text, scale)/2
	color := col.Vec3()
	size := mgl32.Vec2{scale, scale}

	i := 0
	for _, ch := range text {
		g := GlyphFor(ch)
		origin := mgl32.Vec2{startX + float32(i)*advance + charW/2, anchor.Y()}
		for row := 0; row < GlyphSize; row++ {
			for column := 0; column < GlyphSize; column++ {
				if !g.Lit(row, column) {
					continue
				}
				pos := origin.Add(mgl32.Vec2{
					float32(column)*scale - charW/2,
					-float32(row)*scale + charH/2,
				})
				q.DrawQuad(pos, size, color)
			}
		}
		i++
	}
}
