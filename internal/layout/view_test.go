package layout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames struct {
	mu  sync.Mutex
	got []Frame
}

func (f *frames) render(frame Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, frame)
}

func (f *frames) last() Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.got[len(f.got)-1]
}

func (f *frames) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}

func TestView_RendersInitialFrame(t *testing.T) {
	vp := newFakeViewport(1300)
	out := &frames{}

	v := NewView(vp, makeItems(9), ViewOptions{PageSize: 4, ResizeDebounce: 10 * time.Millisecond}, out.render)
	defer v.Close()

	require.Equal(t, 1, out.count())
	frame := out.last()
	assert.Equal(t, Wide, frame.Breakpoint.Name)
	assert.Len(t, frame.Columns, 4)
	assert.False(t, frame.Paged())
	assert.Equal(t, 9, frame.End)
}

func TestView_SwitchesToPagesOnNarrowViewport(t *testing.T) {
	vp := newFakeViewport(1300)
	out := &frames{}

	v := NewView(vp, makeItems(9), ViewOptions{PageSize: 4, ResizeDebounce: 10 * time.Millisecond}, out.render)
	defer v.Close()

	vp.resize(375)
	require.Eventually(t, func() bool { return out.count() == 2 }, time.Second, 2*time.Millisecond)

	frame := out.last()
	assert.True(t, frame.Paged())
	require.Len(t, frame.Columns, 1)
	assert.Len(t, frame.Columns[0], 4)
	assert.Equal(t, 1, frame.Page)
	assert.Equal(t, 3, frame.TotalPages)
}

func TestView_NavigationScrollsToTop(t *testing.T) {
	vp := newFakeViewport(375)
	out := &frames{}

	v := NewView(vp, makeItems(9), ViewOptions{PageSize: 4}, out.render)
	defer v.Close()

	assert.Equal(t, 2, v.Next())
	assert.Equal(t, 3, v.Next())
	assert.Equal(t, 3, v.Next())
	assert.Equal(t, 2, v.Prev())
	assert.Equal(t, 1, v.GoTo(-1))

	assert.Equal(t, 5, vp.scrollCount())
	frame := out.last()
	assert.Equal(t, 0, frame.Start)
	assert.Equal(t, 4, frame.End)
	assert.Equal(t, "item-0", frame.Columns[0][0].ID)
}

func TestView_SetItemsResetsPage(t *testing.T) {
	vp := newFakeViewport(375)
	out := &frames{}

	v := NewView(vp, makeItems(9), ViewOptions{PageSize: 4}, out.render)
	defer v.Close()

	v.GoTo(3)
	v.SetItems(makeItems(20))

	frame := v.Frame()
	assert.Equal(t, 1, frame.Page)
	assert.Equal(t, 5, frame.TotalPages)
	assert.Equal(t, frame, out.last())
}
