package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"portfolio/internal/domain/models"
	"portfolio/internal/layout"
	"portfolio/internal/lib/logger/handlers/slogdiscard"
	contact "portfolio/internal/services/contact_service"
	gallery "portfolio/internal/services/gallery_service"
	httpapp "portfolio/internal/transport/http"
)

type MockGalleryService struct{ mock.Mock }

func (m *MockGalleryService) Categories(ctx context.Context, role models.Role) ([]models.Category, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockGalleryService) ListItems(ctx context.Context, filter gallery.Filter) ([]models.GalleryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) GetItem(ctx context.Context, id string) (models.GalleryItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Layout(ctx context.Context, filter gallery.Filter, widthPx, page int) (gallery.Layout, error) {
	args := m.Called(ctx, filter, widthPx, page)
	return args.Get(0).(gallery.Layout), args.Error(1)
}

type MockPreloadService struct{ mock.Mock }

func (m *MockPreloadService) Preload(ctx context.Context, urls []string) (models.PreloadReport, error) {
	args := m.Called(ctx, urls)
	return args.Get(0).(models.PreloadReport), args.Error(1)
}

type MockContactService struct{ mock.Mock }

func (m *MockContactService) Submit(ctx context.Context, msg models.ContactMessage) (contact.ContactResult, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(contact.ContactResult), args.Error(1)
}

func (m *MockContactService) ListSubmissions(ctx context.Context, page, perPage int) ([]models.ContactSubmission, int, error) {
	args := m.Called(ctx, page, perPage)
	return args.Get(0).([]models.ContactSubmission), args.Int(1), args.Error(2)
}

type MockProfileService struct{ mock.Mock }

func (m *MockProfileService) Profile(ctx context.Context, role models.Role) (models.Profile, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(models.Profile), args.Error(1)
}

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

type RoutersTestSuite struct {
	suite.Suite
	e       *echo.Echo
	gallery *MockGalleryService
	preload *MockPreloadService
	contact *MockContactService
	profile *MockProfileService
}

func (s *RoutersTestSuite) SetupTest() {
	s.gallery = new(MockGalleryService)
	s.preload = new(MockPreloadService)
	s.contact = new(MockContactService)
	s.profile = new(MockProfileService)

	r := httpapp.NewRouter(slogdiscard.NewDiscardLogger(), s.gallery, s.preload, s.contact, s.profile)

	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	e.GET("/health", r.Health)
	api := e.Group("/api/v1")
	api.GET("/profile", r.GetProfile)
	api.POST("/role", r.SetRole)
	api.GET("/gallery/categories", r.ListCategories)
	api.GET("/gallery/items", r.ListItems)
	api.GET("/gallery/items/:id", r.GetItem)
	api.POST("/gallery/items/:id/preload", r.PreloadItem)
	api.GET("/gallery/layout", r.GetLayout)
	api.POST("/assets/preload", r.PreloadAssets)
	api.POST("/contact", r.SubmitContact)
	api.GET("/admin/messages", r.ListSubmissions)

	s.e = e
}

func (s *RoutersTestSuite) TearDownTest() {
	s.gallery.AssertExpectations(s.T())
	s.preload.AssertExpectations(s.T())
	s.contact.AssertExpectations(s.T())
	s.profile.AssertExpectations(s.T())
}

func (s *RoutersTestSuite) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *RoutersTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("success", decode(s.T(), rec)["status"])
}

func (s *RoutersTestSuite) TestGetProfile_QueryRole() {
	s.profile.On("Profile", mock.Anything, models.RoleDeveloper).
		Return(models.Profile{Role: models.RoleDeveloper, Name: "Alex"}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/profile?role=developer", "")
	s.Equal(http.StatusOK, rec.Code)

	data := decode(s.T(), rec)["data"].(map[string]any)
	s.Equal("developer", data["role"])
}

func (s *RoutersTestSuite) TestGetProfile_DefaultRole() {
	s.profile.On("Profile", mock.Anything, models.DefaultRole).
		Return(models.Profile{Role: models.DefaultRole}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/profile", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RoutersTestSuite) TestGetProfile_UnknownRole() {
	rec := s.do(http.MethodGet, "/api/v1/profile?role=manager", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("unknown_role", decode(s.T(), rec)["error"])
}

func (s *RoutersTestSuite) TestSetRole_PersistsInSession() {
	rec := s.do(http.MethodPost, "/api/v1/role", `{"role":"developer"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies)
	s.Equal(httpapp.SessionName, cookies[0].Name)

	s.profile.On("Profile", mock.Anything, models.RoleDeveloper).
		Return(models.Profile{Role: models.RoleDeveloper}, nil).Once()

	rec = s.do(http.MethodGet, "/api/v1/profile", "", cookies...)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RoutersTestSuite) TestSetRole_Invalid() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/role", `{"role":"manager"}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/role", `{}`).Code)
}

func (s *RoutersTestSuite) TestListCategories() {
	s.gallery.On("Categories", mock.Anything, models.RoleDesigner).
		Return([]models.Category{{Name: "video"}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/gallery/categories?role=designer", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Len(decode(s.T(), rec)["data"], 1)
}

func (s *RoutersTestSuite) TestListItems_Filter() {
	featured := true
	want := gallery.Filter{Category: "video", Type: models.ItemTypeVideo, Role: models.RoleDesigner, Featured: &featured}
	s.gallery.On("ListItems", mock.Anything, want).
		Return([]models.GalleryItem{{ID: "reel-2024", Size: models.SizeLarge}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/gallery/items?category=video&type=video&role=designer&featured=true", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	data := decode(s.T(), rec)["data"].(map[string]any)
	s.Equal(float64(1), data["total"])
	item := data["items"].([]any)[0].(map[string]any)
	s.Equal("reel-2024", item["id"])
	s.Equal(models.PlaceholderText, item["placeholder"])
}

func (s *RoutersTestSuite) TestListItems_Errors() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/items?featured=maybe", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/items?role=manager", "").Code)

	s.gallery.On("ListItems", mock.Anything, gallery.Filter{Category: "sculpture"}).
		Return([]models.GalleryItem(nil), gallery.ErrCategoryNotFound).Once()
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/gallery/items?category=sculpture", "").Code)

	s.gallery.On("ListItems", mock.Anything, gallery.Filter{Type: "hologram"}).
		Return([]models.GalleryItem(nil), gallery.ErrInvalidFilter).Once()
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/items?type=hologram", "").Code)
}

func (s *RoutersTestSuite) TestGetItem() {
	s.gallery.On("GetItem", mock.Anything, "brand-aurora").
		Return(models.GalleryItem{ID: "brand-aurora"}, nil).Once()
	s.gallery.On("GetItem", mock.Anything, "missing").
		Return(models.GalleryItem{}, gallery.ErrItemNotFound).Once()

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/gallery/items/brand-aurora", "").Code)

	rec := s.do(http.MethodGet, "/api/v1/gallery/items/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("item_not_found", decode(s.T(), rec)["error"])
}

func (s *RoutersTestSuite) TestGetLayout() {
	bp := layout.ResolveBreakpoint(375)
	s.gallery.On("Layout", mock.Anything, gallery.Filter{Category: "code"}, 375, 2).
		Return(gallery.Layout{
			Breakpoint: bp,
			Columns:    [][]models.GalleryItem{{{ID: "a"}}},
			Page:       2,
			TotalPages: 2,
			Start:      6,
			End:        7,
			Total:      7,
		}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/gallery/layout?width=375&page=2&category=code", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	data := decode(s.T(), rec)["data"].(map[string]any)
	s.Equal(true, data["paged"])
	s.Equal(float64(2), data["page"])
	s.Equal("mobile", data["breakpoint"].(map[string]any)["name"])
}

func (s *RoutersTestSuite) TestGetLayout_DefaultPage() {
	s.gallery.On("Layout", mock.Anything, gallery.Filter{}, 1440, 1).
		Return(gallery.Layout{Breakpoint: layout.ResolveBreakpoint(1440)}, nil).Once()

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/gallery/layout?width=1440", "").Code)
}

func (s *RoutersTestSuite) TestGetLayout_BadParams() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/layout", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/layout?width=-5", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/gallery/layout?width=800&page=x", "").Code)
}

func (s *RoutersTestSuite) TestPreloadItem() {
	item := models.GalleryItem{ID: "reel-2024", Thumbnail: "t.jpg", Assets: []string{"a.mp4"}}
	s.gallery.On("GetItem", mock.Anything, "reel-2024").Return(item, nil).Once()
	s.preload.On("Preload", mock.Anything, []string{"t.jpg", "a.mp4"}).
		Return(models.PreloadReport{Requested: 2, Loaded: 2}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/gallery/items/reel-2024/preload", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(float64(2), decode(s.T(), rec)["data"].(map[string]any)["loaded"])
}

func (s *RoutersTestSuite) TestPreloadAssets() {
	s.preload.On("Preload", mock.Anything, []string{"a.jpg", "b.jpg"}).
		Return(models.PreloadReport{Requested: 2, Loaded: 1, Failed: 1}, nil).Once()

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/assets/preload", `{"urls":["a.jpg","b.jpg"]}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/assets/preload", `{"urls":[]}`).Code)
}

func (s *RoutersTestSuite) TestSubmitContact() {
	msg := models.ContactMessage{Name: "Sam", Email: "sam@example.com", Message: "Hello"}
	s.contact.On("Submit", mock.Anything, msg).
		Return(contact.ContactResult{Status: models.ContactStatusSuccess}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/contact", `{"name":"Sam","email":"sam@example.com","message":"Hello"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("success", decode(s.T(), rec)["data"].(map[string]any)["status"])
}

func (s *RoutersTestSuite) TestSubmitContact_DeliveryFailed() {
	s.contact.On("Submit", mock.Anything, mock.Anything).
		Return(contact.ContactResult{Status: models.ContactStatusError}, errors.Join(contact.ErrDeliveryFailed, errors.New("quota"))).Once()

	rec := s.do(http.MethodPost, "/api/v1/contact", `{"name":"Sam","email":"sam@example.com","message":"Hello"}`)
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("delivery_failed", decode(s.T(), rec)["error"])
}

func (s *RoutersTestSuite) TestSubmitContact_Invalid() {
	rec := s.do(http.MethodPost, "/api/v1/contact", `{"name":"Sam","email":"nope","message":"Hello"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_contact_message", decode(s.T(), rec)["error"])
}

func (s *RoutersTestSuite) TestListSubmissions() {
	s.contact.On("ListSubmissions", mock.Anything, 2, 20).
		Return([]models.ContactSubmission{{Name: "Sam"}}, 21, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/admin/messages?page=2", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	data := decode(s.T(), rec)["data"].(map[string]any)
	s.Equal(float64(21), data["total"])
	s.Equal(float64(20), data["per_page"])
}

func (s *RoutersTestSuite) TestListSubmissions_ArchiveDisabled() {
	s.contact.On("ListSubmissions", mock.Anything, 1, 20).
		Return([]models.ContactSubmission(nil), 0, contact.ErrArchiveDisabled).Once()

	s.Equal(http.StatusServiceUnavailable, s.do(http.MethodGet, "/api/v1/admin/messages", "").Code)
}

func TestRoutersTestSuite(t *testing.T) {
	suite.Run(t, new(RoutersTestSuite))
}
