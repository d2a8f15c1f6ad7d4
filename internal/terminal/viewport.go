// Package terminal binds the gallery layout to a text terminal: the terminal
// width drives the breakpoint and frames are drawn with lipgloss inside a
// bubbletea program.
package terminal

import "sync"

// CellWidthPx is the CSS pixel width one terminal column stands for.
const CellWidthPx = 8

const fallbackColumns = 80

// Viewport is the terminal window as a layout.Viewport. Its size is fed by
// the program's window size messages; a scroll to the top is held until the
// model turns it into a screen clear.
type Viewport struct {
	mu        sync.Mutex
	columns   int
	listeners map[int]func()
	nextID    int
	scrolled  bool
}

// NewViewport returns a viewport columns cells wide. Until the first window
// size message arrives a non-positive width falls back to 80 columns.
func NewViewport(columns int) *Viewport {
	if columns <= 0 {
		columns = fallbackColumns
	}
	return &Viewport{
		columns:   columns,
		listeners: make(map[int]func()),
	}
}

// Columns returns the terminal width in cells.
func (v *Viewport) Columns() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.columns
}

func (v *Viewport) Width() int {
	return v.Columns() * CellWidthPx
}

func (v *Viewport) OnResize(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// ScrollTo records a scroll to the top; terminals have no other position.
func (v *Viewport) ScrollTo(y int) {
	if y != 0 {
		return
	}
	v.mu.Lock()
	v.scrolled = true
	v.mu.Unlock()
}

// Resize sets the width in cells and notifies subscribers.
func (v *Viewport) Resize(columns int) {
	if columns <= 0 {
		return
	}

	v.mu.Lock()
	v.columns = columns
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// TakeScroll reports whether a scroll to the top is pending and clears it.
func (v *Viewport) TakeScroll() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	scrolled := v.scrolled
	v.scrolled = false
	return scrolled
}
