package repository

import (
	"context"

	"portfolio/internal/domain/models"
)

type ContactRepository interface {
	SaveSubmission(ctx context.Context, sub models.ContactSubmission) error
	ListSubmissions(ctx context.Context, page, perPage int) ([]models.ContactSubmission, int, error)
}

// PreloadCache remembers asset URLs that were already fetched. Entries are
// never removed.
type PreloadCache interface {
	Has(ctx context.Context, url string) (bool, error)
	MarkLoaded(ctx context.Context, url string) error
}
