package models

// ItemType is the closed set of work kinds shown in the gallery.
type ItemType string

const (
	ItemTypeVideo     ItemType = "video"
	ItemTypeImage     ItemType = "image"
	ItemTypeLogo      ItemType = "logo"
	ItemTypeCard      ItemType = "card"
	ItemTypePackaging ItemType = "packaging"
	ItemTypeApparel   ItemType = "apparel"
)

// ItemTypes lists every valid ItemType in display order.
var ItemTypes = []ItemType{
	ItemTypeVideo,
	ItemTypeImage,
	ItemTypeLogo,
	ItemTypeCard,
	ItemTypePackaging,
	ItemTypeApparel,
}

// Valid reports whether t belongs to the closed set.
func (t ItemType) Valid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SizeClass is the qualitative tile size derived by the classifier.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// PlaceholderText is shown by clients when a tile fails to load.
const PlaceholderText = "Image not available"

// GalleryItem is one visual work entry.
type GalleryItem struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	Subcategory string    `json:"subcategory,omitempty" yaml:"subcategory"`
	Type        ItemType  `json:"type" yaml:"type"`
	Thumbnail   string    `json:"thumbnail" yaml:"thumbnail"`
	Assets      []string  `json:"assets" yaml:"assets"`
	Featured    bool      `json:"featured,omitempty" yaml:"featured"`
	Size        SizeClass `json:"size,omitempty" yaml:"-"`
}

// MediaURLs returns the thumbnail followed by the detail assets.
func (i GalleryItem) MediaURLs() []string {
	urls := make([]string, 0, len(i.Assets)+1)
	if i.Thumbnail != "" {
		urls = append(urls, i.Thumbnail)
	}
	return append(urls, i.Assets...)
}

// Category groups gallery items and decides which personas show them.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Roles []Role `json:"roles" yaml:"roles"`
}

// VisibleTo reports whether the category is shown for role.
func (c Category) VisibleTo(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
