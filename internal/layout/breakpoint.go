package layout

// BreakpointName is one of the four viewport buckets.
type BreakpointName string

const (
	Mobile  BreakpointName = "mobile"
	Tablet  BreakpointName = "tablet"
	Desktop BreakpointName = "desktop"
	Wide    BreakpointName = "wide"
)

// Width thresholds, inclusive lower bound of the next bucket.
const (
	TabletWidth  = 640
	DesktopWidth = 960
	WideWidth    = 1280
)

// Breakpoint carries the layout parameters for a viewport bucket.
type Breakpoint struct {
	Name            BreakpointName `json:"name"`
	Columns         int            `json:"columns"`
	GapPx           int            `json:"gap_px"`
	MinTileHeightPx int            `json:"min_tile_height_px"`
}

// Paged reports whether the breakpoint pages instead of laying out columns.
func (b Breakpoint) Paged() bool {
	return b.Name == Mobile
}

var breakpoints = [...]Breakpoint{
	{Name: Mobile, Columns: 1, GapPx: 12, MinTileHeightPx: 280},
	{Name: Tablet, Columns: 2, GapPx: 14, MinTileHeightPx: 240},
	{Name: Desktop, Columns: 3, GapPx: 16, MinTileHeightPx: 220},
	{Name: Wide, Columns: 4, GapPx: 18, MinTileHeightPx: 200},
}

// Breakpoints returns the lookup table ordered from narrowest to widest.
func Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpoints))
	copy(out, breakpoints[:])
	return out
}

// ResolveBreakpoint maps a pixel width onto its bucket. Boundary widths
// belong to the wider bucket; negative widths resolve to mobile.
func ResolveBreakpoint(widthPx int) Breakpoint {
	switch {
	case widthPx < TabletWidth:
		return breakpoints[0]
	case widthPx < DesktopWidth:
		return breakpoints[1]
	case widthPx < WideWidth:
		return breakpoints[2]
	default:
		return breakpoints[3]
	}
}

// ParseBreakpointName returns the breakpoint with the given name.
func ParseBreakpointName(name string) (Breakpoint, bool) {
	for _, b := range breakpoints {
		if string(b.Name) == name {
			return b, true
		}
	}
	return Breakpoint{}, false
}
