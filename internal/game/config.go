package game

// Board dimensions (in cells).
const (
	GridWidth  = 20
	GridHeight = 20
)

// Window defaults. The board always fills the whole framebuffer.
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Snake"
)

// Device-space size of one cell. NDC spans [-1,1] on both axes.
const (
	CellWidth  = 2.0 / GridWidth
	CellHeight = 2.0 / GridHeight
	CellInset  = 0.9 // drawn fraction of a cell; the rest shows as grid seams
)

// Step timing (seconds per grid step).
const (
	DefaultStepInterval = 0.15
	MinStepInterval     = 0.05
	StepDecrement       = 0.01
	MaxFrameDelta       = 0.25 // clamp for long stalls (window drag, breakpoint)
)

// Scoring.
const (
	ScoreReward  = 10
	SpeedupEvery = 50
)

// Glyph layout for the bitmap font.
const (
	GlyphSize = 5
)

// Text sizes in device units per font pixel.
const (
	TitleScale = 0.035
	BodyScale  = 0.014
	HUDScale   = 0.011
)
