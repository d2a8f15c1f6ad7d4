package layout

import "portfolio/internal/domain/models"

// SizeFor returns the size class of the tile at zero-based position i.
func SizeFor(i int) models.SizeClass {
	switch {
	case i%7 == 0:
		return models.SizeLarge
	case i%5 == 0:
		return models.SizeSmall
	default:
		// i%3 == 0 and every remaining index are both medium.
		return models.SizeMedium
	}
}

// Classify returns a copy of items with Size set from each item's position.
// The input slice is left untouched.
func Classify(items []models.GalleryItem) []models.GalleryItem {
	out := make([]models.GalleryItem, len(items))
	for i, item := range items {
		item.Size = SizeFor(i)
		out[i] = item
	}
	return out
}
