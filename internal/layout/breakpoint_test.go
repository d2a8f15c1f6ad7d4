package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBreakpoint(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		want    BreakpointName
		columns int
		gap     int
		minTile int
	}{
		{name: "zero width", width: 0, want: Mobile, columns: 1, gap: 12, minTile: 280},
		{name: "negative width", width: -20, want: Mobile, columns: 1, gap: 12, minTile: 280},
		{name: "last mobile pixel", width: 639, want: Mobile, columns: 1, gap: 12, minTile: 280},
		{name: "first tablet pixel", width: 640, want: Tablet, columns: 2, gap: 14, minTile: 240},
		{name: "last tablet pixel", width: 959, want: Tablet, columns: 2, gap: 14, minTile: 240},
		{name: "first desktop pixel", width: 960, want: Desktop, columns: 3, gap: 16, minTile: 220},
		{name: "last desktop pixel", width: 1279, want: Desktop, columns: 3, gap: 16, minTile: 220},
		{name: "first wide pixel", width: 1280, want: Wide, columns: 4, gap: 18, minTile: 200},
		{name: "very wide", width: 10000, want: Wide, columns: 4, gap: 18, minTile: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := ResolveBreakpoint(tt.width)

			assert.Equal(t, tt.want, bp.Name)
			assert.Equal(t, tt.columns, bp.Columns)
			assert.Equal(t, tt.gap, bp.GapPx)
			assert.Equal(t, tt.minTile, bp.MinTileHeightPx)
		})
	}
}

func TestResolveBreakpoint_Monotonic(t *testing.T) {
	prev := ResolveBreakpoint(0)
	for w := 1; w <= 2000; w++ {
		bp := ResolveBreakpoint(w)
		if !assert.LessOrEqual(t, prev.Columns, bp.Columns, "width %d", w) {
			return
		}
		prev = bp
	}
}

func TestBreakpoint_Paged(t *testing.T) {
	assert.True(t, ResolveBreakpoint(320).Paged())
	assert.False(t, ResolveBreakpoint(700).Paged())
	assert.False(t, ResolveBreakpoint(1000).Paged())
	assert.False(t, ResolveBreakpoint(1600).Paged())
}

func TestParseBreakpointName(t *testing.T) {
	bp, ok := ParseBreakpointName("desktop")
	assert.True(t, ok)
	assert.Equal(t, 3, bp.Columns)

	_, ok = ParseBreakpointName("phablet")
	assert.False(t, ok)
}

func TestBreakpoints_ReturnsCopy(t *testing.T) {
	table := Breakpoints()
	table[0].Columns = 99

	assert.Equal(t, 1, ResolveBreakpoint(100).Columns)
	assert.Len(t, Breakpoints(), 4)
}
