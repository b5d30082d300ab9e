package game

// GridCell is a position on the board. Cells compare with ==.
type GridCell struct {
	X, Y int
}

// InBounds reports whether c lies on the GridWidth x GridHeight board.
func (c GridCell) InBounds() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Step returns the neighbouring cell in direction d. Up is +Y, matching device space.
func (c GridCell) Step(d Direction) GridCell {
	switch d {
	case DirUp:
		c.Y++
	case DirDown:
		c.Y--
	case DirLeft:
		c.X--
	case DirRight:
		c.X++
	}
	return c
}

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the 180 degree reverse of d. DirNone has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

func containsCell(cells []GridCell, c GridCell) bool {
	for _, b := range cells {
		if b == c {
			return true
		}
	}
	return false
}
