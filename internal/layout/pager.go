package layout

// DefaultPageSize is the number of tiles per page on narrow viewports.
const DefaultPageSize = 6

// Pager walks a list in fixed-size pages. Pages are 1-indexed and every
// navigation call clamps silently into the valid range. A Pager is not safe
// for concurrent use.
type Pager struct {
	size  int
	count int
	page  int
}

// NewPager returns a pager over count items. A non-positive size falls back
// to DefaultPageSize.
func NewPager(size, count int) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	if count < 0 {
		count = 0
	}
	return &Pager{size: size, count: count, page: 1}
}

// Reset swaps in a new item list and returns to the first page.
func (p *Pager) Reset(count int) {
	if count < 0 {
		count = 0
	}
	p.count = count
	p.page = 1
}

// Size returns the page size.
func (p *Pager) Size() int { return p.size }

// Page returns the current 1-indexed page.
func (p *Pager) Page() int { return p.page }

// TotalPages returns ceil(count / size); zero for an empty list.
func (p *Pager) TotalPages() int {
	return (p.count + p.size - 1) / p.size
}

// Next advances one page, staying put on the last page.
func (p *Pager) Next() int {
	return p.GoTo(p.page + 1)
}

// Prev goes back one page, staying put on the first page.
func (p *Pager) Prev() int {
	return p.GoTo(p.page - 1)
}

// GoTo jumps to page, clamped into [1, TotalPages].
func (p *Pager) GoTo(page int) int {
	p.page = clamp(page, 1, max(1, p.TotalPages()))
	return p.page
}

// Window returns the [start, end) bounds of the current page.
func (p *Pager) Window() (start, end int) {
	start = min((p.page-1)*p.size, p.count)
	end = min(start+p.size, p.count)
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
