package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// statusVerb matches one formatting verb with optional flags, width and precision
var statusVerb = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]*)?[a-zA-Z%]`)

// Messages holds the texts the shell shows for game events
type Messages struct {
	Welcome     string `json:"welcome"`
	PressKey    string `json:"press_key"`
	OutOfBounds string `json:"out_of_bounds"`
	Crash       string `json:"crash"`
	Crossing    string `json:"crossing"`
	Quit        string `json:"quit"`
	Paused      string `json:"paused"`
	Status      string `json:"status"`
}

// GameConfig represents the game settings loaded from JSON
type GameConfig struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Rows          int      `json:"rows"`
	Cols          int      `json:"cols"`
	InitialLength int      `json:"initial_length"`
	Capacity      int      `json:"capacity,omitempty"`
	TickMillis    int      `json:"tick_ms"`
	TailIsFree    bool     `json:"tail_is_free"`
	Sound         bool     `json:"sound"`
	Messages      Messages `json:"messages"`
}

// Validation limits
const (
	MaxRows       = 200
	MaxCols       = 400
	MinTickMillis = 10
	MaxTickMillis = 2000
)

// DefaultConfig returns the classic settings: 26x70 board, length 4, 100 ms ticks
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:          "classic",
		Description:   "Classic worm on the minimum board",
		Rows:          MinRows,
		Cols:          MinCols,
		InitialLength: InitialLength,
		TickMillis:    TickMillis,
		TailIsFree:    true,
		Sound:         true,
		Messages: Messages{
			Welcome:     "Press any key to start the game.",
			PressKey:    "Press any key to leave the game.",
			OutOfBounds: "GAME OVER - you left the board",
			Crash:       "GAME OVER - you hit a barrier",
			Crossing:    "GAME OVER - the worm bit itself",
			Quit:        "The player quit the game.",
			Paused:      "PAUSED - press space to resume",
			Status:      "Position y = %3d   x = %3d   Segments: %3d   Food: %2d",
		},
	}
}

// ValidateGameConfig validates a game configuration
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Board size
	if config.Rows < MinRows || config.Rows > MaxRows {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinRows, MaxRows, config.Rows)
	}
	if config.Cols < MinCols || config.Cols > MaxCols {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinCols, MaxCols, config.Cols)
	}

	// Worm
	cells := config.Rows * config.Cols
	if config.Capacity < 0 || config.Capacity > cells {
		return fmt.Errorf("config validation: capacity must be between 0 and %d, got %d", cells, config.Capacity)
	}
	if config.InitialLength < 1 || config.InitialLength > config.EffectiveCapacity() {
		return fmt.Errorf("config validation: initial_length must be between 1 and capacity (%d), got %d",
			config.EffectiveCapacity(), config.InitialLength)
	}

	if config.TickMillis < MinTickMillis || config.TickMillis > MaxTickMillis {
		return fmt.Errorf("config validation: tick_ms must be between %d and %d, got %d", MinTickMillis, MaxTickMillis, config.TickMillis)
	}

	// Messages
	required := map[string]string{
		"welcome":       config.Messages.Welcome,
		"out_of_bounds": config.Messages.OutOfBounds,
		"crash":         config.Messages.Crash,
		"crossing":      config.Messages.Crossing,
		"quit":          config.Messages.Quit,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("config validation: messages.%s is required", key)
		}
	}
	if config.Messages.Status != "" && !validStatusFormat(config.Messages.Status) {
		return fmt.Errorf("config validation: messages.status must contain four integer verbs (y, x, segments, food)")
	}

	return nil
}

// validStatusFormat reports whether format takes exactly the four integers
// of a status line. "%%" is a literal and does not count.
func validStatusFormat(format string) bool {
	ints := 0
	for _, verb := range statusVerb.FindAllString(format, -1) {
		switch verb[len(verb)-1] {
		case '%':
			if verb != "%%" {
				return false
			}
		case 'd':
			ints++
		default:
			return false
		}
	}
	if ints != 4 {
		return false
	}
	// Catches a dangling "%" the pattern does not match
	return !strings.Contains(fmt.Sprintf(format, 0, 0, 0, 0), "%!")
}

// EffectiveCapacity returns the ring capacity, defaulting to every board cell
func (c *GameConfig) EffectiveCapacity() int {
	if c.Capacity > 0 {
		return c.Capacity
	}
	return c.Rows * c.Cols
}

// TickInterval returns the pause between two ticks
func (c *GameConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Rules returns the step policy selected by the config
func (c *GameConfig) Rules() Rules {
	return Rules{TailIsFree: c.TailIsFree}
}

// EndMessage selects the message for a terminal state
func (c *GameConfig) EndMessage(state GameState) string {
	switch state {
	case OutOfBounds:
		return c.Messages.OutOfBounds
	case Crashed:
		return c.Messages.Crash
	case Crossing:
		return c.Messages.Crossing
	case QuitRequested:
		return c.Messages.Quit
	}
	return ""
}

// StatusLine formats the status message for a snapshot
func (c *GameConfig) StatusLine(s Status) string {
	format := c.Messages.Status
	if format == "" {
		format = DefaultConfig().Messages.Status
	}
	return fmt.Sprintf(format, s.Head.Y, s.Head.X, s.Length, s.FoodRemaining)
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
