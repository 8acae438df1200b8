package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"jobmatrix/internal/config"
)

// Backend saves bytes under a logical key and turns keys into URLs.
type Backend interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
}

// New selects the backend named in cfg.
func New(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "local":
		return NewLocal(afero.NewOsFs(), cfg.MediaRoot, cfg.BaseURL, cfg.MediaURL)
	case "s3":
		return NewS3(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Resolver materialises stored file references into absolute URLs.
type Resolver struct {
	backend     Backend
	placeholder string
}

// NewResolver creates a resolver over backend.
func NewResolver(backend Backend, placeholder string) *Resolver {
	return &Resolver{backend: backend, placeholder: placeholder}
}

// Resolve returns the URL for p without touching storage. Empty stays empty
// and absolute URLs are returned as is.
func (r *Resolver) Resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if IsAbsoluteURL(p) {
		return p
	}
	if r == nil || r.backend == nil {
		return ""
	}
	return r.backend.URL(strings.TrimLeft(p, "/"))
}

// ResolveChecked is Resolve plus an existence check. Missing objects and
// storage failures yield the placeholder.
func (r *Resolver) ResolveChecked(ctx context.Context, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || IsAbsoluteURL(p) {
		return r.Resolve(p)
	}
	ok, err := r.Exists(ctx, p)
	if err != nil || !ok {
		return r.placeholder
	}
	return r.Resolve(p)
}

// Exists reports whether a logical key is present in the backend.
func (r *Resolver) Exists(ctx context.Context, p string) (bool, error) {
	if r == nil || r.backend == nil {
		return false, nil
	}
	return r.backend.Exists(ctx, strings.TrimLeft(p, "/"))
}

// Placeholder returns the configured fallback URL.
func (r *Resolver) Placeholder() string {
	if r == nil {
		return ""
	}
	return r.placeholder
}
