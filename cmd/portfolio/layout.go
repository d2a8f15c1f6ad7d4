package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio/internal/assets"
	"portfolio/internal/catalog"
	"portfolio/internal/config"
	gallery "portfolio/internal/services/gallery_service"
	profile "portfolio/internal/services/profile_service"
	"portfolio/internal/transport/http/dto"
)

func newLayoutCmd() *cobra.Command {
	var (
		width    int
		page     int
		category string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the gallery layout for a viewport width",
		Long:  `Print, as JSON, the breakpoint and columns (or the page window on mobile) the gallery uses at the given width.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := newGallery()
			if err != nil {
				return err
			}

			filter, err := cliFilter(category, role)
			if err != nil {
				return err
			}

			l, err := svc.Layout(context.Background(), filter, width, page)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewLayoutResponse(l))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 1280, "viewport width in CSS pixels")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show on mobile widths")
	cmd.Flags().StringVar(&category, "category", "", "only items of this category")
	cmd.Flags().StringVar(&role, "role", "", "only categories shown for this role")

	return cmd
}

// newGallery builds a gallery service over the configured catalog. CLI
// commands log to stderr so stdout stays machine readable.
func newGallery() (*config.Config, *catalog.Catalog, *gallery.GalleryService, error) {
	cfg, log, err := loadConfig(os.Stderr)
	if err != nil {
		return nil, nil, nil, err
	}

	cat, err := catalog.LoadFile(log, cfg.CatalogPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	svc := gallery.NewGalleryService(log, cat, assets.NewStaticResolver(cfg.Assets.BaseURL), gallery.Options{
		Heights:  cfg.Gallery.Heights,
		PageSize: cfg.Gallery.PageSize,
		CacheTTL: cfg.Gallery.LayoutCacheTTL,
	})
	return cfg, cat, svc, nil
}

func cliFilter(category, role string) (gallery.Filter, error) {
	f := gallery.Filter{Category: category}
	if role != "" {
		r, err := profile.ParseRole(role)
		if err != nil {
			return gallery.Filter{}, err
		}
		f.Role = r
	}
	return f, nil
}
