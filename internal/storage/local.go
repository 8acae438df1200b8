package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Local stores files below a root directory and serves them from a media prefix.
type Local struct {
	fs       afero.Fs
	baseURL  string
	mediaURL string
}

// NewLocal creates a filesystem backend rooted at root on fs.
func NewLocal(fs afero.Fs, root, baseURL, mediaURL string) (*Local, error) {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root %q: %w", root, err)
	}
	return &Local{
		fs:       afero.NewBasePathFs(fs, root),
		baseURL:  strings.TrimRight(baseURL, "/"),
		mediaURL: "/" + strings.Trim(mediaURL, "/"),
	}, nil
}

// Put writes r to key, creating parent folders as needed.
func (l *Local) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if err := l.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("create folder for %q: %w", key, err)
	}
	if err := afero.WriteReader(l.fs, key, r); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Exists reports whether key is a regular file.
func (l *Local) Exists(_ context.Context, key string) (bool, error) {
	info, err := l.fs.Stat(key)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", key, err)
	}
	return !info.IsDir(), nil
}

// URL joins the backend url, media prefix and key.
func (l *Local) URL(key string) string {
	return l.baseURL + l.mediaURL + "/" + strings.TrimLeft(key, "/")
}
