package engine

import "fmt"

// Tile represents the logical content of a board cell
type Tile string

const (
	Free       Tile = "free"
	UsedByWorm Tile = "worm"
	Food1      Tile = "food_1"
	Food2      Tile = "food_2"
	Food3      Tile = "food_3"
	Barrier    Tile = "barrier"
)

// Growth bonuses applied to the worm length
const (
	Bonus1      = 2
	Bonus2      = 4
	Bonus3      = 6
	BonusManual = 3
)

// Board size policy
const (
	MinRows       = 26
	MinCols       = 70
	ReservedRows  = 4
	InitialLength = 4
	TickMillis    = 100
)

// IsFood reports whether the tile holds food of any kind
func (t Tile) IsFood() bool {
	return t == Food1 || t == Food2 || t == Food3
}

// FoodBonus returns the growth bonus for a food tile
func FoodBonus(t Tile) (int, bool) {
	switch t {
	case Food1:
		return Bonus1, true
	case Food2:
		return Bonus2, true
	case Food3:
		return Bonus3, true
	}
	return 0, false
}

// GameState represents the outcome of a tick
type GameState string

const (
	Ongoing       GameState = "ongoing"
	Crashed       GameState = "crash"
	OutOfBounds   GameState = "out_of_bounds"
	Crossing      GameState = "crossing"
	QuitRequested GameState = "quit"
)

// IsTerminal reports whether the state ends the game
func (s GameState) IsTerminal() bool {
	return s != Ongoing
}

// Position represents row (Y) and column (X) coordinates
type Position struct {
	Y int `json:"y"`
	X int `json:"x"`
}

// Unused marks a ring buffer slot that holds no segment
var Unused = Position{Y: -1, X: -1}

// Add returns the position one step along the heading
func (p Position) Add(h Heading) Position {
	return Position{Y: p.Y + h.DY, X: p.X + h.DX}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Direction is one of the eight symbolic movement directions
type Direction string

const (
	Up        Direction = "up"
	Down      Direction = "down"
	Left      Direction = "left"
	Right     Direction = "right"
	UpLeft    Direction = "up_left"
	UpRight   Direction = "up_right"
	DownRight Direction = "down_right"
	DownLeft  Direction = "down_left"
)

// Heading is a unit movement delta
type Heading struct {
	DY int `json:"dy"`
	DX int `json:"dx"`
}

var headings = map[Direction]Heading{
	Up:        {DY: -1, DX: 0},
	Down:      {DY: 1, DX: 0},
	Left:      {DY: 0, DX: -1},
	Right:     {DY: 0, DX: 1},
	UpLeft:    {DY: -1, DX: -1},
	UpRight:   {DY: -1, DX: 1},
	DownRight: {DY: 1, DX: 1},
	DownLeft:  {DY: 1, DX: -1},
}

// Directions lists all directions, orthogonal first
var Directions = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownRight, DownLeft}

// HeadingFor maps a direction to its delta
func HeadingFor(dir Direction) (Heading, bool) {
	h, ok := headings[dir]
	return h, ok
}

// StepResult describes what a single tick did
type StepResult struct {
	State   GameState `json:"state"`
	From    Position  `json:"from"`
	To      Position  `json:"to"`
	Entered Tile      `json:"entered,omitempty"`
	Grew    int       `json:"grew,omitempty"`
	Vacated *Position `json:"vacated,omitempty"`
}

// Ate reports whether the step picked up food
func (r StepResult) Ate() bool {
	return r.Entered.IsFood() && r.State == Ongoing
}

// Status is the snapshot the shell shows in its status line
type Status struct {
	Head          Position  `json:"head"`
	Length        int       `json:"length"`
	FoodRemaining int       `json:"food_remaining"`
	State         GameState `json:"state"`
	Ticks         int       `json:"ticks"`
	Message       string    `json:"message"`
}
