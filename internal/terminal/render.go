package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/domain/models"
	"portfolio/internal/layout"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorAmber = lipgloss.Color("220")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleFeatured = lipgloss.NewStyle().Foreground(colorAmber).Bold(true)
	styleTile     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(0, 1)
)

// Tile heights in text rows, borders excluded.
var tileRows = map[models.SizeClass]int{
	models.SizeLarge:  4,
	models.SizeMedium: 3,
	models.SizeSmall:  2,
}

const gutter = 1

// Render draws frame into a block at most width cells wide.
func Render(frame layout.Frame, width int) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(fmt.Sprintf("%s · %d column(s)", frame.Breakpoint.Name, len(frame.Columns))))
	b.WriteString("\n\n")

	cols := len(frame.Columns)
	if cols == 0 {
		cols = 1
	}
	colWidth := (width - gutter*(cols-1)) / cols
	if colWidth < 12 {
		colWidth = 12
	}

	rendered := make([]string, 0, 2*len(frame.Columns))
	for i, col := range frame.Columns {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", gutter))
		}
		rendered = append(rendered, renderColumn(col, colWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	if frame.Paged() {
		b.WriteString("\n")
		b.WriteString(styleDim.Render(fmt.Sprintf("page %d/%d · n next · p prev · q quit", frame.Page, max(1, frame.TotalPages))))
	} else {
		b.WriteString("\n")
		b.WriteString(styleDim.Render("q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderColumn(items []models.GalleryItem, width int) string {
	if len(items) == 0 {
		return lipgloss.NewStyle().Width(width).Render("")
	}

	tiles := make([]string, len(items))
	for i, item := range items {
		tiles[i] = renderTile(item, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tiles...)
}

func renderTile(item models.GalleryItem, width int) string {
	rows := tileRows[item.Size]
	if rows == 0 {
		rows = tileRows[models.SizeMedium]
	}

	title := item.Title
	if item.Featured {
		title = styleFeatured.Render("★ " + title)
		rows = tileRows[models.SizeLarge]
	}

	body := title + "\n" + styleDim.Render(fmt.Sprintf("%s · %s", item.Type, item.Category))
	if item.Thumbnail == "" {
		body += "\n" + styleDim.Render(models.PlaceholderText)
	}

	// Width and Height include padding but not the border.
	return styleTile.Width(width - 2).Height(rows).Render(body)
}
