package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "portfolio/internal/app/http"
	"portfolio/internal/assets"
	"portfolio/internal/catalog"
	"portfolio/internal/config"
	"portfolio/internal/repository"
	contact "portfolio/internal/services/contact_service"
	gallery "portfolio/internal/services/gallery_service"
	"portfolio/internal/services/mailer"
	preload "portfolio/internal/services/preload_service"
	profile "portfolio/internal/services/profile_service"
	redisapp "portfolio/internal/storage/redis"
	httprouters "portfolio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Catalog    *catalog.Catalog
	Gallery    *gallery.GalleryService

	closers []func() error
}

// New wires the services described by cfg. Postgres and Redis are optional:
// without a DSN submissions are not archived, without a Redis address the
// preload cache lives in memory.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{}

	cat, err := catalog.LoadFile(log, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.Catalog = cat

	resolver, err := a.resolver(ctx, cfg.Assets)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	preloadCache, err := a.preloadCache(ctx, log, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var contactRepo repository.ContactRepository
	if cfg.DSN != "" {
		repo, err := repository.NewRepository(ctx, cfg.DSN)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, func() error { repo.Close(); return nil })
		contactRepo = repo.Contact
	} else {
		log.Warn("dsn is empty, contact submissions will not be archived")
	}

	a.Gallery = gallery.NewGalleryService(log, cat, resolver, gallery.Options{
		Heights:  cfg.Gallery.Heights,
		PageSize: cfg.Gallery.PageSize,
		CacheTTL: cfg.Gallery.LayoutCacheTTL,
	})
	preloadService := preload.NewPreloadService(log, preloadCache, preload.NewHTTPFetcher(cfg.Preload.Timeout), cfg.Preload.Concurrency)
	contactService := contact.NewContactService(log, newMailer(log, cfg.Mail), contactRepo)
	profileService := profile.NewProfileService(log, cat)

	routers := httprouters.NewRouter(log, a.Gallery, preloadService, contactService, profileService)

	a.HTTPServer = httpapp.New(log, httpapp.Config{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		SessionSecret: cfg.SessionSecret,
		AdminSecret:   cfg.Admin.Secret,
		ViewsDir:      cfg.HTTP.ViewsDir,
		StaticDir:     cfg.HTTP.StaticDir,
		ReadTimeout:   cfg.HTTP.ReadTimeout,
		WriteTimeout:  cfg.HTTP.WriteTimeout,
	}, routers)

	return a, nil
}

// Close releases the storage clients opened by New.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

func (a *App) resolver(ctx context.Context, cfg config.AssetsConfig) (assets.Resolver, error) {
	if cfg.GCSBucket == "" {
		return assets.NewStaticResolver(cfg.BaseURL), nil
	}

	r, err := assets.NewGCSResolver(ctx, cfg.GCSBucket, cfg.SignedURLTTL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, r.Close)
	return r, nil
}

func (a *App) preloadCache(ctx context.Context, log *slog.Logger, cfg config.RedisConf) (repository.PreloadCache, error) {
	if cfg.RedisAddr == "" {
		log.Info("using in-memory preload cache")
		return repository.NewMemoryPreloadCache(), nil
	}

	client, err := redisapp.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	return repository.NewRedisPreloadCache(client), nil
}

func newMailer(log *slog.Logger, cfg config.MailConfig) mailer.Mailer {
	if cfg.Provider == config.MailProviderEmailJS {
		return mailer.NewEmailJS(mailer.EmailJSConfig{
			Endpoint:   cfg.Endpoint,
			ServiceID:  cfg.ServiceID,
			TemplateID: cfg.TemplateID,
			PublicKey:  cfg.PublicKey,
			PrivateKey: cfg.PrivateKey,
			Timeout:    cfg.Timeout,
		})
	}
	return mailer.NewLog(log)
}
