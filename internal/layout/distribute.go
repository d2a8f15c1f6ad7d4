package layout

import (
	"errors"
	"fmt"

	"portfolio/internal/domain/models"
)

// HeightTable holds the per-class height estimates used to balance columns.
// The values are presentation tuning, only their ordering matters.
type HeightTable struct {
	Featured int `yaml:"featured" env-default:"400"`
	Large    int `yaml:"large" env-default:"400"`
	Medium   int `yaml:"medium" env-default:"320"`
	Small    int `yaml:"small" env-default:"240"`
	Gap      int `yaml:"gap" env-default:"8"`
}

// DefaultHeights are the estimates tuned for the portfolio tiles.
var DefaultHeights = HeightTable{
	Featured: 400,
	Large:    400,
	Medium:   320,
	Small:    240,
	Gap:      8,
}

var ErrHeightOrder = errors.New("height table must satisfy large >= medium >= small > 0")

// Validate checks that the estimates grow with the visual size.
func (h HeightTable) Validate() error {
	if h.Small <= 0 || h.Medium < h.Small || h.Large < h.Medium {
		return fmt.Errorf("%w: large=%d medium=%d small=%d", ErrHeightOrder, h.Large, h.Medium, h.Small)
	}
	if h.Featured <= 0 || h.Gap < 0 {
		return fmt.Errorf("invalid height table: featured=%d gap=%d", h.Featured, h.Gap)
	}
	return nil
}

// Estimate returns the height an item adds to its column, gap included.
func (h HeightTable) Estimate(item models.GalleryItem) int {
	if item.Featured {
		return h.Featured + h.Gap
	}
	switch item.Size {
	case models.SizeLarge:
		return h.Large + h.Gap
	case models.SizeSmall:
		return h.Small + h.Gap
	default:
		return h.Medium + h.Gap
	}
}

// Distributor spreads tiles over masonry columns.
type Distributor struct {
	heights HeightTable
}

// NewDistributor returns a Distributor using heights.
func NewDistributor(heights HeightTable) *Distributor {
	return &Distributor{heights: heights}
}

// Heights returns the table the distributor balances with.
func (d *Distributor) Heights() HeightTable {
	return d.heights
}

// Distribute places featured items round-robin first, then every other item
// in the column with the smallest accumulated height, lowest index on ties.
// A non-positive column count is treated as one column.
func (d *Distributor) Distribute(items []models.GalleryItem, columns int) [][]models.GalleryItem {
	cols, _ := d.distribute(items, columns)
	return cols
}

// ColumnHeights returns the accumulated height estimate of each column.
func (d *Distributor) ColumnHeights(cols [][]models.GalleryItem) []int {
	heights := make([]int, len(cols))
	for i, col := range cols {
		for _, item := range col {
			heights[i] += d.heights.Estimate(item)
		}
	}
	return heights
}

func (d *Distributor) distribute(items []models.GalleryItem, columns int) ([][]models.GalleryItem, []int) {
	if columns < 1 {
		columns = 1
	}

	cols := make([][]models.GalleryItem, columns)
	heights := make([]int, columns)

	featured := 0
	for _, item := range items {
		if !item.Featured {
			continue
		}
		c := featured % columns
		cols[c] = append(cols[c], item)
		heights[c] += d.heights.Estimate(item)
		featured++
	}

	for _, item := range items {
		if item.Featured {
			continue
		}
		c := shortest(heights)
		cols[c] = append(cols[c], item)
		heights[c] += d.heights.Estimate(item)
	}

	return cols, heights
}

func shortest(heights []int) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}

// Distribute spreads items with the default height table.
func Distribute(items []models.GalleryItem, columns int) [][]models.GalleryItem {
	return NewDistributor(DefaultHeights).Distribute(items, columns)
}
