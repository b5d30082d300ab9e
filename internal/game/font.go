package game

import "unicode"

// Glyph is a 5x5 pixel mask, row-major from the top-left.
type Glyph [GlyphSize * GlyphSize]bool

// Lit reports whether the pixel at (row, col) is set.
func (g *Glyph) Lit(row, col int) bool {
	return g[row*GlyphSize+col]
}

var glyphs = buildGlyphs(map[rune][GlyphSize]string{
	' ': {".....", ".....", ".....", ".....", "....."},
	'A': {".###.", "#...#", "#####", "#...#", "#...#"},
	'B': {"####.", "#...#", "####.", "#...#", "####."},
	'C': {".####", "#....", "#....", "#....", ".####"},
	'D': {"####.", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "####.", "#....", "#####"},
	'F': {"#####", "#....", "####.", "#....", "#...."},
	'G': {".####", "#....", "#.###", "#...#", ".###."},
	'H': {"#...#", "#...#", "#####", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "#####"},
	'J': {"..###", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "###..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "####.", "#....", "#...."},
	'Q': {".###.", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "####.", "#..#.", "#...#"},
	'S': {".####", "#....", ".###.", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'Y': {"#...#", ".#.#.", "..#..", "..#..", "..#.."},
	'Z': {"#####", "...#.", "..#..", ".#...", "#####"},
	'0': {".###.", "#..##", "#.#.#", "##..#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", ".###."},
	'2': {"####.", "....#", ".###.", "#....", "#####"},
	'3': {"####.", "....#", ".###.", "....#", "####."},
	'4': {"#...#", "#...#", "#####", "....#", "....#"},
	'5': {"#####", "#....", "####.", "....#", "####."},
	'6': {".###.", "#....", "####.", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", "..#.."},
	'8': {".###.", "#...#", ".###.", "#...#", ".###."},
	'9': {".###.", "#...#", ".####", "....#", ".###."},
	':': {".....", "..#..", ".....", "..#..", "....."},
	'!': {"..#..", "..#..", "..#..", ".....", "..#.."},
	'-': {".....", ".....", "#####", ".....", "....."},
	'.': {".....", ".....", ".....", ".....", "..#.."},
})

func buildGlyphs(rows map[rune][GlyphSize]string) map[rune]Glyph {
	out := make(map[rune]Glyph, len(rows))
	for ch, art := range rows {
		var g Glyph
		for r, line := range art {
			for c := 0; c < GlyphSize && c < len(line); c++ {
				g[r*GlyphSize+c] = line[c] == '#'
			}
		}
		out[ch] = g
	}
	return out
}

// GlyphFor returns the mask for ch after upper-casing. Unsupported runes map to space.
func GlyphFor(ch rune) Glyph {
	if g, ok := glyphs[unicode.ToUpper(ch)]; ok {
		return g
	}
	return glyphs[' ']
}
