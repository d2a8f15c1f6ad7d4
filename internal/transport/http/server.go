package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	contact "portfolio/internal/services/contact_service"
	gallery "portfolio/internal/services/gallery_service"
	profile "portfolio/internal/services/profile_service"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/request"
	"portfolio/internal/transport/http/dto/response"

	_ "portfolio/docs"
)

const (
	SessionName = "portfolio"
	sessionRole = "role"
)

type GalleryService interface {
	Categories(ctx context.Context, role models.Role) ([]models.Category, error)
	ListItems(ctx context.Context, filter gallery.Filter) ([]models.GalleryItem, error)
	GetItem(ctx context.Context, id string) (models.GalleryItem, error)
	Layout(ctx context.Context, filter gallery.Filter, widthPx, page int) (gallery.Layout, error)
}

type PreloadService interface {
	Preload(ctx context.Context, urls []string) (models.PreloadReport, error)
}

type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (contact.ContactResult, error)
	ListSubmissions(ctx context.Context, page, perPage int) ([]models.ContactSubmission, int, error)
}

type ProfileService interface {
	Profile(ctx context.Context, role models.Role) (models.Profile, error)
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	PreloadService PreloadService
	ContactService ContactService
	ProfileService ProfileService
}

func NewRouter(log *slog.Logger, galleryService GalleryService, preloadService PreloadService, contactService ContactService, profileService ProfileService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		PreloadService: preloadService,
		ContactService: contactService,
		ProfileService: profileService,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.MessageResponse("ok"))
}

// GetProfile godoc
// @Summary Profile for a role
// @Description Returns the biography and skills for the requested role. Without a role the one stored in the session, or the default, is used.
// @Tags profile
// @Produce json
// @Param role query string false "designer or developer"
// @Success 200 {object} response.Response{data=models.Profile}
// @Failure 400 {object} response.ErrorResponse "Unknown role"
// @Router /api/v1/profile [get]
func (r *Routers) GetProfile(c echo.Context) error {
	const op = "http.routers.GetProfile"

	log := r.log.With(
		slog.String("op", op),
	)

	role, err := r.role(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownRole.WithDetails(err.Error()))
	}

	p, err := r.ProfileService.Profile(c.Request().Context(), role)
	if err != nil {
		if errors.Is(err, profile.ErrUnknownRole) {
			return c.JSON(http.StatusBadRequest, response.ErrUnknownRole.WithDetails(err.Error()))
		}
		log.Error("failed to load profile", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(p))
}

// SetRole godoc
// @Summary Remember the visitor's role
// @Description Stores the chosen role in the session cookie.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body request.RoleRequest true "Role"
// @Success 200 {object} response.Response{data=object{role=string}}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/role [post]
func (r *Routers) SetRole(c echo.Context) error {
	const op = "http.routers.SetRole"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat.WithDetails(err.Error()))
	}

	role, err := profile.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrUnknownRole.WithDetails(err.Error()))
	}

	sess, err := session.Get(SessionName, c)
	if err != nil {
		log.Warn("failed to read session, starting a new one", sl.Err(err))
	}
	if sess != nil {
		sess.Values[sessionRole] = string(role)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Error("failed to save session", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"role": string(role)}))
}

// ListCategories godoc
// @Summary Gallery categories
// @Description Categories visible for the role. Without a role every category is returned.
// @Tags gallery
// @Produce json
// @Param role query string false "designer or developer"
// @Success 200 {object} response.Response{data=[]models.Category}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/gallery/categories [get]
func (r *Routers) ListCategories(c echo.Context) error {
	const op = "http.routers.ListCategories"

	var role models.Role
	if raw := c.QueryParam("role"); raw != "" {
		parsed, err := profile.ParseRole(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrUnknownRole.WithDetails(err.Error()))
		}
		role = parsed
	}

	categories, err := r.GalleryService.Categories(c.Request().Context(), role)
	if err != nil {
		return r.galleryError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

// ListItems godoc
// @Summary Gallery items
// @Description Filtered items in catalog order with their size class and resolved media URLs.
// @Tags gallery
// @Produce json
// @Param category query string false "Category name"
// @Param type query string false "Item type"
// @Param role query string false "designer or developer"
// @Param featured query bool false "Only featured (true) or only regular (false) items"
// @Success 200 {object} response.Response{data=dto.ItemListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown category"
// @Router /api/v1/gallery/items [get]
func (r *Routers) ListItems(c echo.Context) error {
	const op = "http.routers.ListItems"

	filter, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidFilter.WithDetails(err.Error()))
	}

	items, err := r.GalleryService.ListItems(c.Request().Context(), filter)
	if err != nil {
		return r.galleryError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ItemListResponse{
		Items: dto.NewItemResponses(items),
		Total: len(items),
	}))
}

// GetItem godoc
// @Summary One gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} response.Response{data=dto.ItemResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/items/{id} [get]
func (r *Routers) GetItem(c echo.Context) error {
	const op = "http.routers.GetItem"

	item, err := r.GalleryService.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.galleryError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewItemResponse(item)))
}

// GetLayout godoc
// @Summary Gallery layout for a viewport
// @Description Resolves the breakpoint for width. Wide viewports get masonry columns, mobile viewports get one page of items.
// @Tags gallery
// @Produce json
// @Param width query int true "Viewport width in CSS pixels"
// @Param page query int false "1-based page, mobile only" default(1)
// @Param category query string false "Category name"
// @Param type query string false "Item type"
// @Param role query string false "designer or developer"
// @Success 200 {object} response.Response{data=dto.LayoutResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/gallery/layout [get]
func (r *Routers) GetLayout(c echo.Context) error {
	const op = "http.routers.GetLayout"

	width, err := strconv.Atoi(c.QueryParam("width"))
	if err != nil || width < 0 {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat.WithDetails("width must be a non-negative integer"))
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat.WithDetails("page must be an integer"))
		}
	}

	filter, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidFilter.WithDetails(err.Error()))
	}

	l, err := r.GalleryService.Layout(c.Request().Context(), filter, width, page)
	if err != nil {
		return r.galleryError(c, op, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewLayoutResponse(l)))
}

// PreloadItem godoc
// @Summary Warm an item's media
// @Description Fetches the thumbnail and detail assets of one item that are not cached yet.
// @Tags gallery
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} response.Response{data=models.PreloadReport}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/items/{id}/preload [post]
func (r *Routers) PreloadItem(c echo.Context) error {
	const op = "http.routers.PreloadItem"

	item, err := r.GalleryService.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.galleryError(c, op, err)
	}

	return r.preload(c, op, item.MediaURLs())
}

// PreloadAssets godoc
// @Summary Warm a batch of asset URLs
// @Description Individual failures are reported in the result and never fail the batch.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body request.PreloadRequest true "URLs"
// @Success 200 {object} response.Response{data=models.PreloadReport}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/assets/preload [post]
func (r *Routers) PreloadAssets(c echo.Context) error {
	const op = "http.routers.PreloadAssets"

	var req request.PreloadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat.WithDetails(err.Error()))
	}

	return r.preload(c, op, req.URLs)
}

// SubmitContact godoc
// @Summary Send the contact form
// @Description Delivers the message once. On failure the status is "error" and the client may retry manually.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body request.ContactRequest true "Message"
// @Success 201 {object} response.Response{data=contact.ContactResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse "Mail provider failed"
// @Router /api/v1/contact [post]
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidContact.WithDetails(err.Error()))
	}

	res, err := r.ContactService.Submit(c.Request().Context(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidMessage):
			return c.JSON(http.StatusBadRequest, response.ErrInvalidContact.WithDetails(err.Error()))
		case errors.Is(err, contact.ErrDeliveryFailed):
			log.Warn("contact delivery failed", slog.String("id", res.ID.String()))
			return c.JSON(http.StatusBadGateway, response.ErrDeliveryFailed)
		default:
			log.Error("contact submission failed", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(res))
}

// ListSubmissions godoc
// @Summary Archived contact messages
// @Tags admin
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} response.Response{data=dto.SubmissionListResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Archive not configured"
// @Security BearerAuth
// @Router /api/v1/admin/messages [get]
func (r *Routers) ListSubmissions(c echo.Context) error {
	const op = "http.routers.ListSubmissions"

	log := r.log.With(
		slog.String("op", op),
	)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	subs, total, err := r.ContactService.ListSubmissions(c.Request().Context(), page, perPage)
	if err != nil {
		if errors.Is(err, contact.ErrArchiveDisabled) {
			return c.JSON(http.StatusServiceUnavailable, response.ErrArchiveDisabled)
		}
		log.Error("failed to list submissions", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.SubmissionListResponse{
		Submissions: subs,
		Total:       total,
		Page:        page,
		PerPage:     perPage,
	}))
}

func (r *Routers) preload(c echo.Context, op string, urls []string) error {
	report, err := r.PreloadService.Preload(c.Request().Context(), urls)
	if err != nil {
		r.log.Warn("preload interrupted", slog.String("op", op), sl.Err(err))
	}
	return c.JSON(http.StatusOK, response.SuccessResponse(report))
}

func (r *Routers) galleryError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, gallery.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, response.ErrItemNotFound.WithDetails(err.Error()))
	case errors.Is(err, gallery.ErrCategoryNotFound):
		return c.JSON(http.StatusNotFound, response.ErrCategoryNotFound.WithDetails(err.Error()))
	case errors.Is(err, gallery.ErrInvalidFilter):
		return c.JSON(http.StatusBadRequest, response.ErrInvalidFilter.WithDetails(err.Error()))
	default:
		r.log.Error("gallery request failed", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

// role picks the query role, then the session role, then the default.
func (r *Routers) role(c echo.Context) (models.Role, error) {
	if raw := c.QueryParam("role"); raw != "" {
		return profile.ParseRole(raw)
	}

	if sess, err := session.Get(SessionName, c); err == nil {
		if s, ok := sess.Values[sessionRole].(string); ok {
			if role, err := profile.ParseRole(s); err == nil {
				return role, nil
			}
		}
	}

	return models.DefaultRole, nil
}

func parseFilter(c echo.Context) (gallery.Filter, error) {
	f := gallery.Filter{
		Category: c.QueryParam("category"),
		Type:     models.ItemType(c.QueryParam("type")),
	}

	if raw := c.QueryParam("role"); raw != "" {
		role, err := profile.ParseRole(raw)
		if err != nil {
			return gallery.Filter{}, err
		}
		f.Role = role
	}

	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return gallery.Filter{}, errors.New("featured must be a boolean")
		}
		f.Featured = &featured
	}

	return f, nil
}
