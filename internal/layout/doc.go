// Package layout implements the responsive masonry engine of the gallery.
//
// A viewport width resolves to a Breakpoint, which fixes the column count,
// gap and minimum tile height. Wide viewports distribute classified tiles
// over columns with a greedy shortest-column rule; the mobile breakpoint
// pages through the same list instead. Every computation is total: a new
// width or a new item list recomputes the result from scratch.
package layout
