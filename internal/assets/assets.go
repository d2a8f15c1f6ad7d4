// Package assets turns catalog media references into URLs a browser can fetch.
package assets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

var ErrEmptyRef = errors.New("empty asset reference")

type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// IsAbsolute reports whether ref already carries a scheme and host.
func IsAbsolute(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// StaticResolver serves assets from a fixed base URL.
type StaticResolver struct {
	base string
}

func NewStaticResolver(baseURL string) *StaticResolver {
	return &StaticResolver{base: strings.TrimRight(baseURL, "/")}
}

func (r *StaticResolver) Resolve(_ context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyRef
	}
	if IsAbsolute(ref) {
		return ref, nil
	}
	if r.base == "" {
		return "/" + strings.TrimLeft(ref, "/"), nil
	}
	return r.base + "/" + strings.TrimLeft(ref, "/"), nil
}

type signer interface {
	SignedURL(object string, opts *storage.SignedURLOptions) (string, error)
}

// GCSResolver signs object names in a Cloud Storage bucket for GET.
type GCSResolver struct {
	client *storage.Client
	bucket signer
	ttl    time.Duration
	now    func() time.Time
}

// NewGCSResolver opens a storage client with application default credentials.
func NewGCSResolver(ctx context.Context, bucket string, ttl time.Duration) (*GCSResolver, error) {
	const op = "assets.NewGCSResolver"

	if bucket == "" {
		return nil, fmt.Errorf("%s: bucket name is empty", op)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GCSResolver{
		client: client,
		bucket: client.Bucket(bucket),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (r *GCSResolver) Resolve(_ context.Context, ref string) (string, error) {
	const op = "assets.GCSResolver.Resolve"

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyRef
	}
	if IsAbsolute(ref) {
		return ref, nil
	}

	signed, err := r.bucket.SignedURL(strings.TrimLeft(ref, "/"), &storage.SignedURLOptions{
		Expires: r.now().Add(r.ttl),
		Method:  "GET",
	})
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", op, ref, err)
	}

	return signed, nil
}

func (r *GCSResolver) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
