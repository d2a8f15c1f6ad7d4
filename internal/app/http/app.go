package httpapp

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/lib/logger/sl"
	appmiddleware "portfolio/internal/middleware"
	httprouters "portfolio/internal/transport/http"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Config struct {
	Host          string
	Port          string
	SessionSecret string
	AdminSecret   string
	ViewsDir      string
	StaticDir     string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	cfg     Config
}

func New(log *slog.Logger, cfg Config, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	s := &Server{
		log:     log,
		e:       e,
		routers: routers,
		cfg:     cfg,
	}
	s.BuildRouters()

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	if s.cfg.StaticDir != "" {
		s.e.Static("/static", s.cfg.StaticDir)
	}

	if tpl := s.compileIndex(); tpl != nil {
		s.e.GET("/", s.routers.Index(tpl))
	}

	api := s.e.Group("/api/v1")
	{
		api.GET("/profile", s.routers.GetProfile)
		api.POST("/role", s.routers.SetRole)
		api.POST("/contact", s.routers.SubmitContact)
		api.POST("/assets/preload", s.routers.PreloadAssets)

		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.GET("/categories", s.routers.ListCategories)
			galleryGroup.GET("/items", s.routers.ListItems)
			galleryGroup.GET("/items/:id", s.routers.GetItem)
			galleryGroup.POST("/items/:id/preload", s.routers.PreloadItem)
			galleryGroup.GET("/layout", s.routers.GetLayout)
		}

		if s.cfg.AdminSecret != "" {
			adminGroup := api.Group("/admin", appmiddleware.AdminJWT(s.cfg.AdminSecret))
			{
				adminGroup.GET("/messages", s.routers.ListSubmissions)
			}
		} else {
			s.log.Warn("admin secret is empty, admin routes disabled")
		}
	}
}

func (s *Server) compileIndex() *template.Template {
	if s.cfg.ViewsDir == "" {
		return nil
	}

	path := filepath.Join(s.cfg.ViewsDir, "index.pug")
	tpl, err := httprouters.CompileIndex(path)
	if err != nil {
		s.log.Warn("index page disabled", slog.String("template", path), sl.Err(err))
		return nil
	}
	return tpl
}
