// Package catalog loads the static content of the portfolio: profiles,
// categories and gallery items.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio/internal/domain/models"
)

//go:embed data/catalog.yaml
var defaultSource []byte

var (
	ErrDuplicateItem   = errors.New("duplicate item id")
	ErrUnknownType     = errors.New("unknown item type")
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingProfile  = errors.New("missing profile")
)

// Catalog is the immutable content source.
type Catalog struct {
	Profiles   []models.Profile     `yaml:"profiles"`
	Categories []models.Category    `yaml:"categories"`
	Items      []models.GalleryItem `yaml:"items"`
}

// Default returns the catalog compiled into the binary.
func Default(log *slog.Logger) (*Catalog, error) {
	return Load(log, bytes.NewReader(defaultSource))
}

// LoadFile reads a catalog from path, or the embedded one when path is empty.
func LoadFile(log *slog.Logger, path string) (*Catalog, error) {
	if path == "" {
		return Default(log)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	defer f.Close()

	return Load(log, f)
}

// Load decodes and validates a catalog. Items without a thumbnail are
// dropped with a warning instead of failing the whole load.
func Load(log *slog.Logger, r io.Reader) (*Catalog, error) {
	const op = "catalog.Load"

	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categories := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(c.Items))
	items := make([]models.GalleryItem, 0, len(c.Items))
	for _, item := range c.Items {
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%s: %w: %q", op, ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = struct{}{}

		if !item.Type.Valid() {
			return nil, fmt.Errorf("%s: %w: %q on %q", op, ErrUnknownType, item.Type, item.ID)
		}
		if _, ok := categories[item.Category]; !ok {
			return nil, fmt.Errorf("%s: %w: %q on %q", op, ErrUnknownCategory, item.Category, item.ID)
		}
		if item.Thumbnail == "" {
			log.Warn("skipping item without thumbnail", slog.String("op", op), slog.String("id", item.ID))
			continue
		}
		if item.Assets == nil {
			item.Assets = []string{}
		}
		items = append(items, item)
	}
	c.Items = items

	for _, role := range []models.Role{models.RoleDesigner, models.RoleDeveloper} {
		if _, ok := c.Profile(role); !ok {
			return nil, fmt.Errorf("%s: %w for %q", op, ErrMissingProfile, role)
		}
	}

	return &c, nil
}

// Profile returns the profile written for role.
func (c *Catalog) Profile(role models.Role) (models.Profile, bool) {
	for _, p := range c.Profiles {
		if p.Role == role {
			return p, true
		}
	}
	return models.Profile{}, false
}

// Category returns the category named name.
func (c *Catalog) Category(name string) (models.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return models.Category{}, false
}
