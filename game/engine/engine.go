package engine

import "fmt"

// WormColor is the display tag of the player worm
const WormColor = "user"

// Engine provides the main interface for game operations
type Engine interface {
	// Level state
	Board() *Board
	Worm() *Worm
	State() GameState
	IsGameOver() bool
	Status() Status
	Reset() error

	// Per-tick operations
	SetHeading(dir Direction) error
	Grow(delta int)
	Step() StepResult
	Quit()

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error
}

// GameEngine implements the Engine interface for one level
type GameEngine struct {
	config   *GameConfig
	board    *Board
	worm     *Worm
	state    GameState
	ticks    int
	message  string
	lastStep *StepResult
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{config: config}
	if err := e.initLevel(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the classic configuration
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default config rejected: %v", err))
	}
	return e
}

// initLevel builds the board, lays out the level and places the worm
func (e *GameEngine) initLevel() error {
	board, err := NewBoard(e.config.Rows, e.config.Cols)
	if err != nil {
		return err
	}
	LayoutLevel(board)

	worm, err := NewWorm(e.config.EffectiveCapacity(), e.config.InitialLength, StartPosition(board), Right, WormColor)
	if err != nil {
		return fmt.Errorf("failed to create worm: %w", err)
	}
	board.Place(worm.Head(), UsedByWorm)

	e.board = board
	e.worm = worm
	e.state = Ongoing
	e.ticks = 0
	e.message = e.config.Messages.Welcome
	e.lastStep = nil
	return nil
}

// Board returns the level board
func (e *GameEngine) Board() *Board {
	return e.board
}

// Worm returns the player worm
func (e *GameEngine) Worm() *Worm {
	return e.worm
}

// State returns the current game state
func (e *GameEngine) State() GameState {
	return e.state
}

// IsGameOver returns whether a terminal state was reached
func (e *GameEngine) IsGameOver() bool {
	return e.state.IsTerminal()
}

// Ticks returns the number of committed steps
func (e *GameEngine) Ticks() int {
	return e.ticks
}

// Message returns the latest message for the player
func (e *GameEngine) Message() string {
	return e.message
}

// LastStep returns the result of the last step, or nil before the first one
func (e *GameEngine) LastStep() *StepResult {
	return e.lastStep
}

// Status returns the snapshot shown in the status line
func (e *GameEngine) Status() Status {
	return Status{
		Head:          e.worm.Head(),
		Length:        e.worm.Len(),
		FoodRemaining: e.board.FoodRemaining(),
		State:         e.state,
		Ticks:         e.ticks,
		Message:       e.message,
	}
}

// Reset rebuilds the level from the current configuration
func (e *GameEngine) Reset() error {
	return e.initLevel()
}

// SetHeading changes the worm heading for the next step
func (e *GameEngine) SetHeading(dir Direction) error {
	return e.worm.SetHeading(dir)
}

// Grow lengthens the worm outside of food pickup
func (e *GameEngine) Grow(delta int) {
	if e.IsGameOver() {
		return
	}
	e.worm.Grow(delta)
}

// Step advances the game by one tick. After a terminal state it is a no-op
// that repeats the terminal state.
func (e *GameEngine) Step() StepResult {
	if e.IsGameOver() {
		return StepResult{State: e.state, From: e.worm.Head(), To: e.worm.Head()}
	}

	result := Step(e.board, e.worm, e.config.Rules())
	e.lastStep = &result
	e.state = result.State

	if result.State == Ongoing {
		e.ticks++
		if result.Ate() {
			e.message = fmt.Sprintf("Food +%d", result.Grew)
		}
	} else {
		e.message = e.config.EndMessage(result.State)
	}
	return result
}

// Quit ends the game on player request without touching board or worm
func (e *GameEngine) Quit() {
	if e.IsGameOver() {
		return
	}
	e.state = QuitRequested
	e.message = e.config.EndMessage(QuitRequested)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and restarts the level
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	return e.initLevel()
}
