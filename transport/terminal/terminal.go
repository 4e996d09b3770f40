package terminal

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/session"
)

// Terminal owns the tcell screen for one game: it renders frames, turns key
// presses into inputs and shows dialogs.
type Terminal struct {
	*Renderer

	screen tcell.Screen
	rows   int
	cols   int
	events chan tcell.Event
	quit   chan struct{}

	mu      sync.Mutex
	reading chan struct{} // closed when the Inputs goroutine exits
	pending tcell.Event   // read by Inputs after its context ended
}

// New wraps an initialized screen for a board of rows x cols
func New(screen tcell.Screen, rows, cols int) *Terminal {
	screen.SetStyle(StyleDefault)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		Renderer: NewRenderer(screen),
		screen:   screen,
		rows:     rows,
		cols:     cols,
		events:   make(chan tcell.Event, 16),
		quit:     make(chan struct{}),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t
}

// Open initializes the real terminal and checks that the board fits
func Open(rows, cols int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	t := New(screen, rows, cols)
	if err := t.CheckSize(); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

// CheckSize fails when the screen cannot hold the board plus the reserved rows
func (t *Terminal) CheckSize() error {
	width, height := t.screen.Size()
	needRows := t.rows + engine.ReservedRows
	if width < t.cols || height < needRows {
		return fmt.Errorf("terminal too small: %w", &engine.SizeError{
			Rows:    height,
			Cols:    width,
			MinRows: needRows,
			MinCols: t.cols,
		})
	}
	return nil
}

// Inputs forwards mapped key presses until ctx is done. WaitKey blocks
// until the forwarding goroutine has stopped, so end ctx before calling it.
func (t *Terminal) Inputs(ctx context.Context) <-chan session.Input {
	out := make(chan session.Input)
	done := make(chan struct{})

	t.mu.Lock()
	t.reading = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, open := <-t.events:
				if !open {
					return
				}
				// Lost the race with cancellation; leave the event for WaitKey
				if ctx.Err() != nil {
					t.unread(ev)
					return
				}
				in, ok := t.translate(ev)
				if !ok {
					continue
				}
				select {
				case out <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func (t *Terminal) unread(ev tcell.Event) {
	t.mu.Lock()
	t.pending = ev
	t.mu.Unlock()
}

// next returns the event left by Inputs, if any, before reading the queue
func (t *Terminal) next(ctx context.Context) (tcell.Event, bool, error) {
	t.mu.Lock()
	reading := t.reading
	t.mu.Unlock()
	if reading != nil {
		select {
		case <-reading:
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	t.mu.Lock()
	ev := t.pending
	t.pending = nil
	t.mu.Unlock()
	if ev != nil {
		return ev, true, nil
	}

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case ev, open := <-t.events:
		return ev, open, nil
	}
}

// translate handles resize events and maps keys
func (t *Terminal) translate(ev tcell.Event) (session.Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		if err := t.CheckSize(); err != nil {
			log.Printf("terminal: %v", err)
		}
	case *tcell.EventKey:
		return MapKey(ev)
	}
	return session.Input{}, false
}

// WaitKey blocks until any key is pressed and reports whether it was a quit key
func (t *Terminal) WaitKey(ctx context.Context) (bool, error) {
	for {
		ev, open, err := t.next(ctx)
		if err != nil {
			return false, err
		}
		if !open {
			return true, nil
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			t.translate(ev)
			continue
		}
		in, mapped := MapKey(key)
		return mapped && in.Kind == session.InputQuit, nil
	}
}

// ShowDialog draws lines in a box over the board
func (t *Terminal) ShowDialog(lines ...string) {
	t.DrawDialog(t.rows, t.cols, lines...)
}

// Close stops the event pump and restores the terminal
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}
