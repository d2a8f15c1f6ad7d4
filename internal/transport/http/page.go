package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/eknkc/pug"
	"github.com/labstack/echo/v4"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	gallery "portfolio/internal/services/gallery_service"
	"portfolio/internal/transport/http/dto"
)

// IndexData feeds the server-rendered landing page.
type IndexData struct {
	Role        models.Role
	Profile     models.Profile
	Categories  []models.Category
	Items       []dto.ItemResponse
	Placeholder string
}

// CompileIndex compiles the pug template at path.
func CompileIndex(path string) (*template.Template, error) {
	return pug.CompileFile(path, pug.Options{})
}

// Index renders the landing page for the visitor's role.
func (r *Routers) Index(tpl *template.Template) echo.HandlerFunc {
	return func(c echo.Context) error {
		const op = "http.routers.Index"

		log := r.log.With(
			slog.String("op", op),
		)

		role, err := r.role(c)
		if err != nil {
			role = models.DefaultRole
		}
		ctx := c.Request().Context()

		p, err := r.ProfileService.Profile(ctx, role)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			return c.String(http.StatusInternalServerError, "internal error")
		}

		categories, err := r.GalleryService.Categories(ctx, role)
		if err != nil {
			log.Error("failed to load categories", sl.Err(err))
			return c.String(http.StatusInternalServerError, "internal error")
		}

		items, err := r.GalleryService.ListItems(ctx, gallery.Filter{Role: role})
		if err != nil {
			log.Error("failed to load items", sl.Err(err))
			return c.String(http.StatusInternalServerError, "internal error")
		}

		var buf bytes.Buffer
		if err := tpl.Execute(&buf, IndexData{
			Role:        role,
			Profile:     p,
			Categories:  categories,
			Items:       dto.NewItemResponses(items),
			Placeholder: models.PlaceholderText,
		}); err != nil {
			log.Error("failed to render index", sl.Err(err))
			return c.String(http.StatusInternalServerError, "internal error")
		}

		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	}
}
