// Package media stores binary artifacts (avatar images) on local disk and
// serves them through a public base URL.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lasudevlab/learnhub-backend/internal/logger"
)

type Store interface {
	Upload(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type localStore struct {
	log     *logger.Logger
	root    string
	baseURL string
}

func NewLocalStore(log *logger.Logger, root, baseURL string) (Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("media root directory required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &localStore{
		log:     log.With("service", "MediaStore"),
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *localStore) Upload(ctx context.Context, key string, r io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}

func (s *localStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

func (s *localStore) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// resolve rejects keys that would escape the media root.
func (s *localStore) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid media key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
