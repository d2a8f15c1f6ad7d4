package layout

import (
	"sync"
	"time"

	"portfolio/internal/domain/models"
)

// Frame is one rendered state of a gallery view.
type Frame struct {
	Breakpoint Breakpoint             `json:"breakpoint"`
	Columns    [][]models.GalleryItem `json:"columns"`
	Page       int                    `json:"page,omitempty"`
	TotalPages int                    `json:"total_pages,omitempty"`
	Start      int                    `json:"start"`
	End        int                    `json:"end"`
}

// Paged reports whether the frame shows a single page instead of masonry.
func (f Frame) Paged() bool {
	return f.Breakpoint.Paged()
}

// Compose lays out items for bp. Paged breakpoints use pager to pick the
// window and put it in one column; the others distribute everything.
func Compose(d *Distributor, pager *Pager, items []models.GalleryItem, bp Breakpoint) Frame {
	if bp.Paged() {
		start, end := pager.Window()
		return Frame{
			Breakpoint: bp,
			Columns:    [][]models.GalleryItem{items[start:end]},
			Page:       pager.Page(),
			TotalPages: pager.TotalPages(),
			Start:      start,
			End:        end,
		}
	}

	return Frame{
		Breakpoint: bp,
		Columns:    d.Distribute(items, bp.Columns),
		Start:      0,
		End:        len(items),
	}
}

// ViewOptions configures a View.
type ViewOptions struct {
	Heights        HeightTable
	PageSize       int
	ResizeDebounce time.Duration
}

// View binds a viewport to the layout engine and re-renders on every
// settled resize, item swap or page change.
type View struct {
	vp      Viewport
	render  func(Frame)
	dist    *Distributor
	watcher *Watcher

	mu    sync.Mutex
	items []models.GalleryItem
	pager *Pager
	bp    Breakpoint
}

// NewView classifies items, renders the first frame synchronously and starts
// watching vp.
func NewView(vp Viewport, items []models.GalleryItem, opts ViewOptions, render func(Frame)) *View {
	if render == nil {
		render = func(Frame) {}
	}
	heights := opts.Heights
	if heights == (HeightTable{}) {
		heights = DefaultHeights
	}

	classified := Classify(items)
	v := &View{
		vp:     vp,
		render: render,
		dist:   NewDistributor(heights),
		items:  classified,
		pager:  NewPager(opts.PageSize, len(classified)),
	}

	v.watcher = NewWatcher(vp, opts.ResizeDebounce, v.onBreakpoint)
	v.mu.Lock()
	v.bp = v.watcher.Current()
	frame := v.frameLocked()
	v.mu.Unlock()
	v.render(frame)

	return v
}

// Frame returns the current frame without rendering it.
func (v *View) Frame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frameLocked()
}

// SetItems replaces the list, resets to page one and re-renders.
func (v *View) SetItems(items []models.GalleryItem) {
	v.mu.Lock()
	v.items = Classify(items)
	v.pager.Reset(len(v.items))
	frame := v.frameLocked()
	v.mu.Unlock()

	v.render(frame)
}

// Next moves to the next page.
func (v *View) Next() int { return v.navigate((*Pager).Next) }

// Prev moves to the previous page.
func (v *View) Prev() int { return v.navigate((*Pager).Prev) }

// GoTo jumps to page.
func (v *View) GoTo(page int) int {
	return v.navigate(func(p *Pager) int { return p.GoTo(page) })
}

// Close stops watching the viewport.
func (v *View) Close() {
	v.watcher.Close()
}

func (v *View) navigate(step func(*Pager) int) int {
	v.mu.Lock()
	page := step(v.pager)
	frame := v.frameLocked()
	v.mu.Unlock()

	v.vp.ScrollTo(0)
	v.render(frame)

	return page
}

func (v *View) onBreakpoint(bp Breakpoint) {
	v.mu.Lock()
	v.bp = bp
	frame := v.frameLocked()
	v.mu.Unlock()

	v.render(frame)
}

func (v *View) frameLocked() Frame {
	return Compose(v.dist, v.pager, v.items, v.bp)
}
