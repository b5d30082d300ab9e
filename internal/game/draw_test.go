package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type quad struct {
	offset, scale mgl32.Vec2
	color         mgl32.Vec3
}

// recorder is a QuadDrawer/Surface that keeps every call.
type recorder struct {
	quads  []quad
	clears int
}

func (r *recorder) DrawQuad(offset, scale mgl32.Vec2, color mgl32.Vec3) {
	r.quads = append(r.quads, quad{offset, scale, color})
}

func (r *recorder) Clear(mgl32.Vec3) { r.clears++ }

func (r *recorder) withColor(c RGB) []quad {
	var out []quad
	for _, q := range r.quads {
		if q.color == c.Vec3() {
			out = append(out, q)
		}
	}
	return out
}

func near32(a, b float32) bool { return mgl32.FloatEqualThreshold(a, b, 1e-5) }

func litPixels(ch rune) int {
	g := GlyphFor(ch)
	n := 0
	for _, on := range g {
		if on {
			n++
		}
	}
	return n
}

func TestCellTransform(t *testing.T) {
	tests := []struct {
		cell   GridCell
		offset mgl32.Vec2
	}{
		{GridCell{0, 0}, mgl32.Vec2{-0.95, -0.95}},
		{GridCell{19, 19}, mgl32.Vec2{0.95, 0.95}},
		{GridCell{10, 0}, mgl32.Vec2{0.05, -0.95}},
		{GridCell{5, 10}, mgl32.Vec2{-0.45, 0.05}},
	}
	wantScale := mgl32.Vec2{0.09, 0.09}
	for _, tt := range tests {
		offset, scale := CellTransform(tt.cell)
		if !offset.ApproxEqualThreshold(tt.offset, 1e-5) {
			t.Errorf("cell %v: offset = %v, want %v", tt.cell, offset, tt.offset)
		}
		if !scale.ApproxEqualThreshold(wantScale, 1e-5) {
			t.Errorf("cell %v: scale = %v, want %v", tt.cell, scale, wantScale)
		}
	}
}

func TestCellTransformReproducible(t *testing.T) {
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			o1, s1 := CellTransform(GridCell{x, y})
			o2, s2 := CellTransform(GridCell{x, y})
			if o1 != o2 || s1 != s2 {
				t.Fatalf("cell (%d,%d) not reproducible", x, y)
			}
		}
	}
}

func TestDrawCellIssuesOneDraw(t *testing.T) {
	var r recorder
	DrawCell(&r, GridCell{3, 4}, Palette.Fruit)
	if len(r.quads) != 1 {
		t.Fatalf("draws = %d, want 1", len(r.quads))
	}
	offset, scale := CellTransform(GridCell{3, 4})
	got := r.quads[0]
	if got.offset != offset || got.scale != scale || got.color != Palette.Fruit.Vec3() {
		t.Errorf("draw = %+v", got)
	}
}

func TestTextWidth(t *testing.T) {
	const s = 0.02
	tests := []struct {
		text string
		want float32
	}{
		{"", 0},
		{"A", 5 * s},
		{"AB", 11 * s},
		{"SCORE 10", 47 * s},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, s); !near32(got, tt.want) {
			t.Errorf("TextWidth(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDrawTextSingleCharCentred(t *testing.T) {
	const s = float32(0.02)
	anchor := mgl32.Vec2{0.3, 0.2}
	var r recorder
	DrawText(&r, "I", anchor, s, Palette.Text)

	if len(r.quads) != litPixels('I') {
		t.Fatalf("draws = %d, want %d", len(r.quads), litPixels('I'))
	}
	minX, maxX := r.quads[0].offset.X(), r.quads[0].offset.X()
	maxY := r.quads[0].offset.Y()
	for _, q := range r.quads {
		if q.scale != (mgl32.Vec2{s, s}) {
			t.Fatalf("pixel scale = %v, want %v", q.scale, s)
		}
		minX = min(minX, q.offset.X())
		maxX = max(maxX, q.offset.X())
		maxY = max(maxY, q.offset.Y())
	}
	// 'I' has a full top row, so the first and last columns are both lit.
	if !near32(minX, anchor.X()-2.5*s) {
		t.Errorf("start x = %v, want %v", minX, anchor.X()-2.5*s)
	}
	if !near32(maxX, anchor.X()-2.5*s+4*s) {
		t.Errorf("last column x = %v, want %v", maxX, anchor.X()+1.5*s)
	}
	if !near32(maxY, anchor.Y()+2.5*s) {
		t.Errorf("top row y = %v, want %v", maxY, anchor.Y()+2.5*s)
	}
}

func TestDrawTextLayout(t *testing.T) {
	const s = float32(0.01)
	var r recorder
	DrawText(&r, "LL", mgl32.Vec2{0, 0}, s, Palette.Text)

	// 'L' lights its whole left column, so the leftmost pixel of each glyph
	// marks the glyph's start.
	starts := map[float32]bool{}
	for _, q := range r.quads {
		if near32(q.offset.Y(), 2.5*s) {
			starts[q.offset.X()] = true
		}
	}
	if len(starts) != 2 {
		t.Fatalf("top-row pixels at %v, want two glyph starts", starts)
	}
	total := TextWidth("LL", s)
	for x := range starts {
		if !near32(x, -total/2) && !near32(x, -total/2+6*s) {
			t.Errorf("glyph start %v, want %v or %v", x, -total/2, -total/2+6*s)
		}
	}
}

func TestDrawTextCaseAndFallback(t *testing.T) {
	const s = float32(0.01)
	var upper, lower recorder
	DrawText(&upper, "SNAKE", mgl32.Vec2{}, s, Palette.Text)
	DrawText(&lower, "snake", mgl32.Vec2{}, s, Palette.Text)
	if len(upper.quads) != len(lower.quads) {
		t.Fatalf("lowercase drew %d quads, uppercase %d", len(lower.quads), len(upper.quads))
	}
	for i := range upper.quads {
		if upper.quads[i] != lower.quads[i] {
			t.Fatalf("quad %d differs: %+v vs %+v", i, upper.quads[i], lower.quads[i])
		}
	}

	var r recorder
	DrawText(&r, "@~", mgl32.Vec2{}, s, Palette.Text)
	if len(r.quads) != 0 {
		t.Errorf("unsupported runes drew %d quads", len(r.quads))
	}

	// Blank glyphs still take up their slot.
	var mixed recorder
	DrawText(&mixed, "A@A", mgl32.Vec2{}, s, Palette.Text)
	if len(mixed.quads) != 2*litPixels('A') {
		t.Errorf("draws = %d, want %d", len(mixed.quads), 2*litPixels('A'))
	}
}

func TestGlyphTable(t *testing.T) {
	for _, ch := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789:!-." {
		if litPixels(ch) == 0 {
			t.Errorf("glyph %q is blank", ch)
		}
	}
	if litPixels(' ') != 0 {
		t.Errorf("space glyph has lit pixels")
	}
	if GlyphFor('?') != GlyphFor(' ') {
		t.Errorf("unknown rune did not fall back to space")
	}
}

func TestRenderBoard(t *testing.T) {
	var r recorder
	RenderBoard(&r, false)
	if len(r.quads) != 1+GridWidth*GridHeight {
		t.Fatalf("draws = %d, want %d", len(r.quads), 1+GridWidth*GridHeight)
	}
	border := r.quads[0]
	if border.offset != (mgl32.Vec2{0, 0}) || border.scale != (mgl32.Vec2{2, 2}) {
		t.Errorf("border quad = %+v", border)
	}
	if n := len(r.withColor(Palette.TileLight)); n != GridWidth*GridHeight/2 {
		t.Errorf("light tiles = %d", n)
	}
}
