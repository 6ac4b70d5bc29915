package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"helpdesk/internal/shared/config"
)

// LocalDiskStore writes attachment objects under a root directory and
// returns URLs below the configured public base. Keys are slash
// separated and must stay inside the root.
type LocalDiskStore struct {
	root          string
	publicBaseURL string
}

func NewLocalDiskStore(cfg *config.StorageConfig) *LocalDiskStore {
	return &LocalDiskStore{
		root:          cfg.Root,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *LocalDiskStore) Store(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cleaned, err := s.cleanKey(key)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(content, size))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	if written != size {
		os.Remove(path)
		return "", fmt.Errorf("attachment truncated: wrote %d of %d bytes", written, size)
	}

	return s.publicBaseURL + "/" + cleaned, nil
}

func (s *LocalDiskStore) cleanKey(key string) (string, error) {
	cleaned := strings.Trim(strings.ReplaceAll(key, "\\", "/"), "/")
	if cleaned == "" {
		return "", fmt.Errorf("object key is required")
	}
	for _, part := range strings.Split(cleaned, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("invalid object key: %s", key)
		}
	}
	return cleaned, nil
}
