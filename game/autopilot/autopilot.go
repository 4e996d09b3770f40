package autopilot

import (
	"github.com/wricardo/worm-game/game/engine"
)

// Strategy steers the worm toward the nearest reachable food
type Strategy struct {
	visitedCells map[engine.Position]int
	lastTarget   *engine.Position
}

// New creates a strategy with an empty visit history
func New() *Strategy {
	return &Strategy{
		visitedCells: make(map[engine.Position]int),
	}
}

// Target returns the food the last decision headed for, if any
func (s *Strategy) Target() (engine.Position, bool) {
	if s.lastTarget == nil {
		return engine.Position{}, false
	}
	return *s.lastTarget, true
}

// NextHeading picks the direction for the next tick. It returns false when
// every neighbouring cell ends the game.
func (s *Strategy) NextHeading(b *engine.Board, w *engine.Worm, rules engine.Rules) (engine.Direction, bool) {
	head := w.Head()
	s.visitedCells[head]++
	s.lastTarget = nil

	safe := safeDirections(b, w, rules)
	if len(safe) == 0 {
		return "", false
	}

	// Follow the shortest path unless it walks into a pocket too small for the body
	if dir, target, ok := s.pathToNearestFood(b, w, rules); ok {
		h, _ := engine.HeadingFor(dir)
		if len(engine.ReachableFrom(b, head.Add(h))) > w.Len() {
			s.lastTarget = &target
			return dir, true
		}
	}

	return s.exploreMove(b, head, safe), true
}

// pathToNearestFood runs a breadth-first search from the head over 8-way
// moves and returns the first direction of the shortest path to any food
func (s *Strategy) pathToNearestFood(b *engine.Board, w *engine.Worm, rules engine.Rules) (engine.Direction, engine.Position, bool) {
	type queueItem struct {
		pos   engine.Position
		first engine.Direction
	}

	head := w.Head()
	visited := map[engine.Position]bool{head: true}
	var queue []queueItem

	for _, dir := range engine.Directions {
		h, _ := engine.HeadingFor(dir)
		next := head.Add(h)
		if !engine.CanEnter(b, w, next, rules) {
			continue
		}
		if b.ContentAt(next).IsFood() {
			return dir, next, true
		}
		visited[next] = true
		queue = append(queue, queueItem{pos: next, first: dir})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range engine.Directions {
			h, _ := engine.HeadingFor(dir)
			next := current.pos.Add(h)
			if visited[next] || !isOpen(b, next) {
				continue
			}
			if b.ContentAt(next).IsFood() {
				return current.first, next, true
			}
			visited[next] = true
			queue = append(queue, queueItem{pos: next, first: current.first})
		}
	}

	return "", engine.Position{}, false
}

// exploreMove picks the safe direction with the most room, breaking ties by
// the least visited cell
func (s *Strategy) exploreMove(b *engine.Board, head engine.Position, safe []engine.Direction) engine.Direction {
	best := safe[0]
	bestRoom, bestVisits := -1, 0

	for _, dir := range safe {
		h, _ := engine.HeadingFor(dir)
		next := head.Add(h)
		room := len(engine.ReachableFrom(b, next))
		visits := s.visitedCells[next]

		if room > bestRoom || (room == bestRoom && visits < bestVisits) {
			best, bestRoom, bestVisits = dir, room, visits
		}
	}
	return best
}

// Reset forgets the visit history
func (s *Strategy) Reset() {
	s.visitedCells = make(map[engine.Position]int)
	s.lastTarget = nil
}

func safeDirections(b *engine.Board, w *engine.Worm, rules engine.Rules) []engine.Direction {
	var safe []engine.Direction
	for _, dir := range engine.Directions {
		h, _ := engine.HeadingFor(dir)
		if engine.CanEnter(b, w, w.Head().Add(h), rules) {
			safe = append(safe, dir)
		}
	}
	return safe
}

func isOpen(b *engine.Board, pos engine.Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	switch b.ContentAt(pos) {
	case engine.Barrier, engine.UsedByWorm:
		return false
	}
	return true
}
