package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity  = errors.New("worm capacity must be at least 1")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Worm stores its body in a fixed-capacity ring buffer. The live segments
// are the run head, head-1, ... of Len() slots, ending early at the first
// unused slot. Slots outside that run are always Unused.
type Worm struct {
	segments  []Position
	headIndex int
	length    int
	heading   Heading
	color     string
}

// NewWorm creates a worm whose head sits in slot 0. The initial length is
// clamped to [1, capacity].
func NewWorm(capacity, initialLength int, head Position, dir Direction, color string) (*Worm, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if initialLength > capacity {
		initialLength = capacity
	}
	if initialLength < 1 {
		initialLength = 1
	}

	segments := make([]Position, capacity)
	for i := range segments {
		segments[i] = Unused
	}
	segments[0] = head

	w := &Worm{
		segments:  segments,
		headIndex: 0,
		length:    initialLength,
		color:     color,
	}
	if err := w.SetHeading(dir); err != nil {
		return nil, err
	}
	return w, nil
}

// SetHeading changes the direction used by the next advance
func (w *Worm) SetHeading(dir Direction) error {
	h, ok := HeadingFor(dir)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, dir)
	}
	w.heading = h
	return nil
}

// Heading returns the current movement delta
func (w *Worm) Heading() Heading {
	return w.heading
}

// Color returns the display tag
func (w *Worm) Color() string {
	return w.color
}

// Head returns the head position
func (w *Worm) Head() Position {
	return w.segments[w.headIndex]
}

// Len returns the logical length, including segments still to grow in
func (w *Worm) Len() int {
	return w.length
}

// Cap returns the ring capacity
func (w *Worm) Cap() int {
	return len(w.segments)
}

// index returns the slot offset steps behind the head
func (w *Worm) index(offset int) int {
	n := len(w.segments)
	return ((w.headIndex-offset)%n + n) % n
}

// VacatingTail returns the position the next Advance frees, if any. While
// the worm is still growing into unused slots nothing is freed.
func (w *Worm) VacatingTail() (Position, bool) {
	p := w.segments[w.index(w.length-1)]
	return p, p != Unused
}

// Advance moves the head to pos without any checks. It returns the position
// that dropped off the tail so the caller can free its board cell.
func (w *Worm) Advance(pos Position) (Position, bool) {
	tail := w.index(w.length - 1)
	vacated := w.segments[tail]
	w.segments[tail] = Unused

	w.headIndex = (w.headIndex + 1) % len(w.segments)
	w.segments[w.headIndex] = pos

	return vacated, vacated != Unused
}

// Grow extends the logical length by delta, saturating at capacity
func (w *Worm) Grow(delta int) {
	if delta <= 0 {
		return
	}
	w.length += delta
	if w.length > len(w.segments) {
		w.length = len(w.segments)
	}
}

// Occupies reports whether a live segment sits at pos
func (w *Worm) Occupies(pos Position) bool {
	for i := 0; i < w.length; i++ {
		p := w.segments[w.index(i)]
		if p == Unused {
			break
		}
		if p == pos {
			return true
		}
	}
	return false
}

// Segments returns the live segment positions, head first
func (w *Worm) Segments() []Position {
	out := make([]Position, 0, w.length)
	for i := 0; i < w.length; i++ {
		p := w.segments[w.index(i)]
		if p == Unused {
			break
		}
		out = append(out, p)
	}
	return out
}

// Tail returns the last live segment
func (w *Worm) Tail() Position {
	segs := w.Segments()
	return segs[len(segs)-1]
}
