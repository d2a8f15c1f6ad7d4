package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"portfolio/internal/assets"
	"portfolio/internal/catalog"
	"portfolio/internal/domain/models"
	"portfolio/internal/layout"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
)

var (
	ErrItemNotFound     = errors.New("gallery item not found")
	ErrCategoryNotFound = errors.New("gallery category not found")
	ErrInvalidFilter    = errors.New("invalid gallery filter")
)

// Filter narrows the catalog. Zero fields match everything.
type Filter struct {
	Category string
	Type     models.ItemType
	Role     models.Role
	Featured *bool
}

func (f Filter) key() string {
	featured := "*"
	if f.Featured != nil {
		featured = strconv.FormatBool(*f.Featured)
	}
	return strings.Join([]string{f.Category, string(f.Type), string(f.Role), featured}, "|")
}

// Layout is a computed gallery arrangement for one viewport.
type Layout struct {
	Breakpoint    layout.Breakpoint      `json:"breakpoint"`
	Columns       [][]models.GalleryItem `json:"columns"`
	ColumnHeights []int                  `json:"column_heights"`
	Page          int                    `json:"page,omitempty"`
	TotalPages    int                    `json:"total_pages,omitempty"`
	Start         int                    `json:"start"`
	End           int                    `json:"end"`
	Total         int                    `json:"total"`
}

type Options struct {
	Heights  layout.HeightTable
	PageSize int
	CacheTTL time.Duration
}

type GalleryService struct {
	log      *slog.Logger
	catalog  *catalog.Catalog
	resolver assets.Resolver
	dist     *layout.Distributor
	pageSize int
	memo     *cache.Cache
}

type memoEntry struct {
	items  []models.GalleryItem
	layout Layout
}

func NewGalleryService(log *slog.Logger, cat *catalog.Catalog, resolver assets.Resolver, opts Options) *GalleryService {
	if opts.PageSize < 1 {
		opts.PageSize = layout.DefaultPageSize
	}
	if opts.Heights == (layout.HeightTable{}) {
		opts.Heights = layout.DefaultHeights
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	return &GalleryService{
		log:      log,
		catalog:  cat,
		resolver: resolver,
		dist:     layout.NewDistributor(opts.Heights),
		pageSize: opts.PageSize,
		memo:     cache.New(opts.CacheTTL, 2*opts.CacheTTL),
	}
}

// Categories returns the categories shown for role, or all of them when
// role is empty.
func (s *GalleryService) Categories(_ context.Context, role models.Role) ([]models.Category, error) {
	const op = "service.GalleryService.Categories"

	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%s: %w: role %q", op, ErrInvalidFilter, role)
	}

	out := make([]models.Category, 0, len(s.catalog.Categories))
	for _, c := range s.catalog.Categories {
		if role == "" || c.VisibleTo(role) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListItems returns the matching items in catalog order, classified by their
// position in the filtered list and with media refs resolved to URLs.
func (s *GalleryService) ListItems(ctx context.Context, filter Filter) ([]models.GalleryItem, error) {
	const op = "service.GalleryService.ListItems"
	log := s.log.With(
		slog.String("op", op),
		slog.String("filter", filter.key()),
	)

	if err := s.checkFilter(filter); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := s.visible(ctx, log, filter)

	log.Debug("items listed", slog.Int("count", len(items)))
	return items, nil
}

// visible filters the catalog, resolves media and classifies what is left.
// Items whose thumbnail cannot be resolved are left out before classifying.
func (s *GalleryService) visible(ctx context.Context, log *slog.Logger, filter Filter) []models.GalleryItem {
	matched := make([]models.GalleryItem, 0, len(s.catalog.Items))
	for _, item := range s.catalog.Items {
		if !s.matches(item, filter) {
			continue
		}
		resolved, ok := s.resolve(ctx, log, item)
		if !ok {
			continue
		}
		matched = append(matched, resolved)
	}

	return layout.Classify(matched)
}

// GetItem looks an item up by id. Its size class is the one it gets in the
// unfiltered gallery.
func (s *GalleryService) GetItem(ctx context.Context, id string) (models.GalleryItem, error) {
	const op = "service.GalleryService.GetItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
	)

	for _, item := range s.visible(ctx, log, Filter{}) {
		if item.ID == id {
			return item, nil
		}
	}

	return models.GalleryItem{}, fmt.Errorf("%s: %w: %s", op, ErrItemNotFound, id)
}

// Layout arranges the filtered items for a viewport width. Masonry
// breakpoints get the full distribution; the paged breakpoint gets the
// window for page, clamped into range.
func (s *GalleryService) Layout(ctx context.Context, filter Filter, widthPx, page int) (Layout, error) {
	const op = "service.GalleryService.Layout"

	bp := layout.ResolveBreakpoint(widthPx)
	key := filter.key() + "|" + string(bp.Name)

	entry, ok := s.cached(key)
	if ok {
		metrics.LayoutComputations.WithLabelValues(string(bp.Name), "hit").Inc()
	} else {
		items, err := s.ListItems(ctx, filter)
		if err != nil {
			return Layout{}, fmt.Errorf("%s: %w", op, err)
		}

		entry = memoEntry{items: items}
		if !bp.Paged() {
			cols := s.dist.Distribute(items, bp.Columns)
			entry.layout = Layout{
				Breakpoint:    bp,
				Columns:       cols,
				ColumnHeights: s.dist.ColumnHeights(cols),
				Start:         0,
				End:           len(items),
				Total:         len(items),
			}
		}
		s.memo.SetDefault(key, entry)
		metrics.LayoutComputations.WithLabelValues(string(bp.Name), "miss").Inc()
	}

	if !bp.Paged() {
		return entry.layout, nil
	}

	pager := layout.NewPager(s.pageSize, len(entry.items))
	pager.GoTo(page)
	frame := layout.Compose(s.dist, pager, entry.items, bp)

	return Layout{
		Breakpoint:    frame.Breakpoint,
		Columns:       frame.Columns,
		ColumnHeights: s.dist.ColumnHeights(frame.Columns),
		Page:          frame.Page,
		TotalPages:    frame.TotalPages,
		Start:         frame.Start,
		End:           frame.End,
		Total:         len(entry.items),
	}, nil
}

func (s *GalleryService) cached(key string) (memoEntry, bool) {
	v, ok := s.memo.Get(key)
	if !ok {
		return memoEntry{}, false
	}
	entry, ok := v.(memoEntry)
	return entry, ok
}

func (s *GalleryService) checkFilter(f Filter) error {
	if f.Category != "" {
		if _, ok := s.catalog.Category(f.Category); !ok {
			return fmt.Errorf("%w: %s", ErrCategoryNotFound, f.Category)
		}
	}
	if f.Type != "" && !f.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidFilter, f.Type)
	}
	if f.Role != "" && !f.Role.Valid() {
		return fmt.Errorf("%w: role %q", ErrInvalidFilter, f.Role)
	}
	return nil
}

func (s *GalleryService) matches(item models.GalleryItem, f Filter) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Featured != nil && item.Featured != *f.Featured {
		return false
	}
	if f.Role != "" {
		c, ok := s.catalog.Category(item.Category)
		if !ok || !c.VisibleTo(f.Role) {
			return false
		}
	}
	return true
}

// resolve rewrites media refs into URLs. It reports false when the
// thumbnail cannot be resolved; assets that fail are dropped from the item.
func (s *GalleryService) resolve(ctx context.Context, log *slog.Logger, item models.GalleryItem) (models.GalleryItem, bool) {
	if s.resolver == nil {
		return item, true
	}

	u, err := s.resolver.Resolve(ctx, item.Thumbnail)
	if err != nil {
		log.Warn("failed to resolve thumbnail, item hidden", slog.String("item", item.ID), sl.Err(err))
		return models.GalleryItem{}, false
	}
	item.Thumbnail = u

	resolved := make([]string, 0, len(item.Assets))
	for _, ref := range item.Assets {
		u, err := s.resolver.Resolve(ctx, ref)
		if err != nil {
			log.Warn("failed to resolve asset", slog.String("item", item.ID), slog.String("ref", ref), sl.Err(err))
			continue
		}
		resolved = append(resolved, u)
	}
	item.Assets = resolved

	return item, true
}
