package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/layout"
)

// Gallery is the part of layout.View the preview drives.
type Gallery interface {
	Frame() layout.Frame
	Next() int
	Prev() int
	GoTo(page int) int
}

// RedrawMsg wakes the program after the gallery produced a new frame.
type RedrawMsg struct{}

// Model is the bubbletea model of the terminal preview.
type Model struct {
	vp      *Viewport
	gallery Gallery
}

func NewModel(vp *Viewport, gallery Gallery) Model {
	return Model{
		vp:      vp,
		gallery: gallery,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Resize(msg.Width)
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "l", "right":
			m.gallery.Next()
		case "p", "h", "left":
			m.gallery.Prev()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.gallery.GoTo(int(key[0] - '0'))
		}
		if m.vp.TakeScroll() {
			return m, tea.ClearScreen
		}
	case RedrawMsg:
	}
	return m, nil
}

func (m Model) View() string {
	return Render(m.gallery.Frame(), m.vp.Columns())
}

// Redraw returns a frame callback for layout.View that wakes the program
// p points at. Frames rendered before the program is set are dropped; the
// program draws the current frame when it starts.
func Redraw(p func() *tea.Program) func(layout.Frame) {
	return func(layout.Frame) {
		if prog := p(); prog != nil {
			// Send blocks until the event loop reads it, and frames are
			// also rendered from inside Update.
			go prog.Send(RedrawMsg{})
		}
	}
}
