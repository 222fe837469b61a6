package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/proyectozoo/zoo-api/internal/platform/logger"
)

// LocalStore writes images to the local filesystem.
type LocalStore struct {
	maxBytes int64
	logger   *slog.Logger
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates a LocalStore. A non-positive maxBytes means DefaultMaxBytes.
func NewLocalStore(maxBytes int64, log *slog.Logger) *LocalStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = slog.Default()
	}
	return &LocalStore{
		maxBytes: maxBytes,
		logger:   log.With(slog.String("component", "image_store"), slog.String("backend", "local")),
	}
}

// Save implements Store.
func (s *LocalStore) Save(ctx context.Context, upload Upload, dir string) (Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ext, err := Check(upload, s.maxBytes)
	if err != nil {
		return Result{}, err
	}
	data, err := readLimited(upload.Reader, s.maxBytes)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, newFileName(ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write image: %w", err)
	}

	log.Debug("image stored", slog.String("path", path), slog.Int("bytes", len(data)))
	return Result{Path: path}, nil
}

// Remove implements Store.
func (s *LocalStore) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove image %s: %w", path, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("image removed", slog.String("path", path))
	return nil
}
