package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	"portfolio/internal/repository"
)

// Fetcher retrieves one asset so that downstream caches hold it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) error
}

// HTTPFetcher GETs the asset and drains the body.
type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

type PreloadService struct {
	log         *slog.Logger
	cache       repository.PreloadCache
	fetcher     Fetcher
	concurrency int
}

func NewPreloadService(log *slog.Logger, cache repository.PreloadCache, fetcher Fetcher, concurrency int) *PreloadService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PreloadService{
		log:         log,
		cache:       cache,
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// Preload warms every distinct URL that is not cached yet. Individual
// failures are reported and logged but never fail the batch; the returned
// error is only set when ctx ends before the batch finishes.
func (s *PreloadService) Preload(ctx context.Context, urls []string) (models.PreloadReport, error) {
	const op = "service.PreloadService.Preload"
	log := s.log.With(slog.String("op", op))

	pending := dedupe(urls)
	report := models.PreloadReport{Requested: len(pending)}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.concurrency)

	for _, url := range pending {
		cached, err := s.cache.Has(ctx, url)
		if err != nil {
			log.Warn("preload cache lookup failed", slog.String("url", url), sl.Err(err))
		}
		if cached {
			report.Cached++
			metrics.PreloadResults.WithLabelValues("cached").Inc()
			continue
		}

		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			fetchErr := s.fetcher.Fetch(ctx, url)

			mu.Lock()
			defer mu.Unlock()

			if fetchErr != nil {
				log.Warn("failed to preload asset", slog.String("url", url), sl.Err(fetchErr))
				report.Failed++
				report.Failures = append(report.Failures, models.PreloadFailure{URL: url, Error: fetchErr.Error()})
				metrics.PreloadResults.WithLabelValues("failed").Inc()
				return nil
			}

			if err := s.cache.MarkLoaded(ctx, url); err != nil {
				log.Warn("failed to mark asset loaded", slog.String("url", url), sl.Err(err))
			}
			report.Loaded++
			metrics.PreloadResults.WithLabelValues("loaded").Inc()
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].URL < report.Failures[j].URL
	})

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("preload finished",
		slog.Int("requested", report.Requested),
		slog.Int("loaded", report.Loaded),
		slog.Int("cached", report.Cached),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
