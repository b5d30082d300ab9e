package game

import (
	"math"

	"golang.org/x/exp/rand"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "not started"
}

// initialSnake is the start configuration, head first, facing right.
var initialSnake = [...]GridCell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}

// State is the whole game session. It is created once and Reset on restart;
// only Tick, SetDirection and Reset mutate it.
type State struct {
	snake    []GridCell
	fruit    GridCell
	dir      Direction
	score    int
	acc      float64
	interval float64
	started  bool
	over     bool
	rng      *rand.Rand
	events   *EventBus
}

// NewState returns a fresh session seeded for fruit placement.
// events may be nil.
func NewState(seed uint64, events *EventBus) *State {
	s := &State{
		snake:  make([]GridCell, 0, GridWidth*GridHeight),
		rng:    rand.New(rand.NewSource(seed)),
		events: events,
	}
	s.reset()
	return s
}

// Reset puts the session back to its start configuration and places a new fruit.
func (s *State) Reset() {
	s.reset()
	s.events.Emit(Event{Type: EventReset, Cell: s.snake[0]})
}

func (s *State) reset() {
	s.snake = append(s.snake[:0], initialSnake[:]...)
	s.dir = DirNone
	s.score = 0
	s.interval = DefaultStepInterval
	s.started = false
	s.over = false
	s.acc = 0
	s.SpawnFruit()
}

// SetDirection applies one key press. Outside Playing only the key that
// triggers the next phase is honoured.
func (s *State) SetDirection(key Key) {
	switch s.Phase() {
	case PhaseNotStarted:
		d := key.Direction()
		if d == DirNone {
			return
		}
		// The first arrow becomes the initial heading unless it points back into
		// the body, which would end the game on the first step.
		if s.snake[0].Step(d) == s.snake[1] {
			d = DirRight
		}
		s.dir = d
		s.started = true
		s.acc = 0
		s.events.Emit(Event{Type: EventStarted, Cell: s.snake[0]})

	case PhaseGameOver:
		if key == KeyRestart {
			s.Reset()
		}

	case PhasePlaying:
		d := key.Direction()
		if d == DirNone || d == s.dir.Opposite() {
			return
		}
		s.dir = d
	}
}

// Tick accumulates dt seconds and applies at most one grid step once the
// step interval has elapsed.
func (s *State) Tick(dt float64) {
	if s.Phase() != PhasePlaying {
		return
	}
	s.acc += dt
	if s.acc < s.interval {
		return
	}
	s.acc = 0
	if s.dir == DirNone {
		return
	}

	head := s.snake[0].Step(s.dir)
	// Checked against the full pre-step body: the tail has not moved yet.
	if !head.InBounds() || containsCell(s.snake, head) {
		s.over = true
		s.events.Emit(Event{Type: EventGameOver, Cell: head, Score: s.score})
		return
	}

	s.snake = append(s.snake, GridCell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head

	if head != s.fruit {
		s.snake = s.snake[:len(s.snake)-1]
		return
	}

	s.score += ScoreReward
	s.SpawnFruit()
	s.events.Emit(Event{Type: EventFruitEaten, Cell: head, Score: s.score})
	if s.score%SpeedupEvery == 0 {
		next := math.Max(s.interval-StepDecrement, MinStepInterval)
		if next < s.interval {
			s.interval = next
			s.events.Emit(Event{Type: EventSpeedUp, Cell: head, Score: s.score})
		}
	}
}

// SpawnFruit places the fruit on a random cell not covered by the snake.
// It does not return if the snake fills the board.
func (s *State) SpawnFruit() {
	for {
		c := GridCell{X: s.rng.Intn(GridWidth), Y: s.rng.Intn(GridHeight)}
		if !containsCell(s.snake, c) {
			s.fruit = c
			return
		}
	}
}

func (s *State) Phase() Phase {
	switch {
	case s.over:
		return PhaseGameOver
	case s.started:
		return PhasePlaying
	}
	return PhaseNotStarted
}

// Snake returns the body, head first. The slice is owned by State and is only
// valid until the next Tick or Reset.
func (s *State) Snake() []GridCell { return s.snake }

func (s *State) Head() GridCell { return s.snake[0] }
func (s *State) Fruit() GridCell { return s.fruit }
func (s *State) Score() int { return s.score }
func (s *State) StepInterval() float64 { return s.interval }
func (s *State) Direction() Direction { return s.dir }
