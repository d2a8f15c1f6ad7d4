package dto

import (
	"portfolio/internal/domain/models"
	"portfolio/internal/layout"
	gallery "portfolio/internal/services/gallery_service"
)

// ItemResponse is a gallery item as served to clients. Placeholder is the
// text to show when the thumbnail fails to load.
type ItemResponse struct {
	models.GalleryItem
	Placeholder string `json:"placeholder"`
}

func NewItemResponse(item models.GalleryItem) ItemResponse {
	return ItemResponse{GalleryItem: item, Placeholder: models.PlaceholderText}
}

func NewItemResponses(items []models.GalleryItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = NewItemResponse(item)
	}
	return out
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

type LayoutResponse struct {
	Breakpoint    layout.Breakpoint `json:"breakpoint"`
	Paged         bool              `json:"paged"`
	Columns       [][]ItemResponse  `json:"columns"`
	ColumnHeights []int             `json:"column_heights"`
	Page          int               `json:"page,omitempty"`
	TotalPages    int               `json:"total_pages,omitempty"`
	Start         int               `json:"start"`
	End           int               `json:"end"`
	Total         int               `json:"total"`
}

func NewLayoutResponse(l gallery.Layout) LayoutResponse {
	cols := make([][]ItemResponse, len(l.Columns))
	for i, col := range l.Columns {
		cols[i] = NewItemResponses(col)
	}
	return LayoutResponse{
		Breakpoint:    l.Breakpoint,
		Paged:         l.Breakpoint.Paged(),
		Columns:       cols,
		ColumnHeights: l.ColumnHeights,
		Page:          l.Page,
		TotalPages:    l.TotalPages,
		Start:         l.Start,
		End:           l.End,
		Total:         l.Total,
	}
}

type SubmissionListResponse struct {
	Submissions []models.ContactSubmission `json:"submissions"`
	Total       int                        `json:"total"`
	Page        int                        `json:"page"`
	PerPage     int                        `json:"per_page"`
}
