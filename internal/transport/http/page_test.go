package http_test

import (
	"html/template"
	"net/http"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/handlers/slogdiscard"
	gallery "portfolio/internal/services/gallery_service"
	httpapp "portfolio/internal/transport/http"
)

func (s *RoutersTestSuite) TestIndex() {
	tpl := template.Must(template.New("index").Parse(
		`<h1>{{.Profile.Name}}</h1>{{range .Items}}<img src="{{.Thumbnail}}" alt="{{.Placeholder}}">{{end}}`,
	))

	r := httpapp.NewRouter(slogdiscard.NewDiscardLogger(), s.gallery, s.preload, s.contact, s.profile)
	s.e.GET("/", r.Index(tpl))

	s.profile.On("Profile", mock.Anything, models.RoleDeveloper).
		Return(models.Profile{Role: models.RoleDeveloper, Name: "Alex"}, nil).Once()
	s.gallery.On("Categories", mock.Anything, models.RoleDeveloper).
		Return([]models.Category{{Name: "code"}}, nil).Once()
	s.gallery.On("ListItems", mock.Anything, gallery.Filter{Role: models.RoleDeveloper}).
		Return([]models.GalleryItem{{ID: "cli", Thumbnail: "/static/cli.png"}}, nil).Once()

	rec := s.do(http.MethodGet, "/?role=developer", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "<h1>Alex</h1>")
	s.Contains(rec.Body.String(), `src="/static/cli.png"`)
	s.Contains(rec.Body.String(), models.PlaceholderText)
}
