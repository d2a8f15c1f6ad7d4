package layout

import (
	"sync"
	"time"
)

// DefaultResizeDebounce is the quiet period before a resize is handled.
const DefaultResizeDebounce = 150 * time.Millisecond

// Viewport is the host window the gallery is laid out in.
type Viewport interface {
	// Width returns the current width in pixels.
	Width() int
	// OnResize registers fn for resize events and returns its unsubscribe func.
	OnResize(fn func()) (unsubscribe func())
	// ScrollTo scrolls the viewport to the vertical offset y.
	ScrollTo(y int)
}

// Watcher republishes the resolved breakpoint after the viewport settles.
type Watcher struct {
	vp      Viewport
	delay   time.Duration
	publish func(Breakpoint)

	// pubMu serialises publish calls and lets Close wait out one in flight.
	pubMu sync.Mutex

	mu          sync.Mutex
	current     Breakpoint
	timer       *time.Timer
	gen         uint64
	closed      bool
	unsubscribe func()
}

// NewWatcher reads the initial width synchronously and starts listening for
// resize events. publish is called from a timer goroutine once a burst of
// resizes has been quiet for delay; the last width wins.
func NewWatcher(vp Viewport, delay time.Duration, publish func(Breakpoint)) *Watcher {
	if delay <= 0 {
		delay = DefaultResizeDebounce
	}
	if publish == nil {
		publish = func(Breakpoint) {}
	}

	w := &Watcher{
		vp:      vp,
		delay:   delay,
		publish: publish,
		current: ResolveBreakpoint(vp.Width()),
	}
	w.unsubscribe = vp.OnResize(w.handleResize)

	return w
}

// Current returns the last resolved breakpoint.
func (w *Watcher) Current() Breakpoint {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close unsubscribes from the viewport and drops any pending publish. Once
// Close returns publish is not called again. Close must not be called from
// inside publish.
func (w *Watcher) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.gen++
	if w.timer != nil {
		w.timer.Stop()
	}
	unsubscribe := w.unsubscribe
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	// wait out a publish that was already running
	w.pubMu.Lock()
	w.pubMu.Unlock()
}

func (w *Watcher) handleResize() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = time.AfterFunc(w.delay, func() { w.settle(gen) })
}

// settle publishes for resize generation gen unless a later resize or Close
// superseded it.
func (w *Watcher) settle(gen uint64) {
	w.pubMu.Lock()
	defer w.pubMu.Unlock()

	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	bp := ResolveBreakpoint(w.vp.Width())
	w.current = bp
	w.mu.Unlock()

	w.publish(bp)
}
