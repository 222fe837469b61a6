package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/config"
)

// DefaultMaxBytes is the upload limit applied when none is configured (5 MiB).
const DefaultMaxBytes int64 = 5 * 1024 * 1024

var (
	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = errors.New("image exceeds maximum size")

	// ErrUnsupportedFormat is returned when the file extension is not an accepted image type.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEmptyUpload is returned when no file content was provided.
	ErrEmptyUpload = errors.New("empty upload")
)

// allowedExtensions maps accepted extensions to their content type.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Upload is an incoming image.
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// Result describes a stored image.
type Result struct {
	// Path is the location persisted on the owning record: a filesystem path
	// for the local backend, an object key for S3.
	Path string
}

// Store saves and removes entity photos.
type Store interface {
	// Save validates the upload and writes it under dir with a fresh name.
	// Returns ErrTooLarge or ErrUnsupportedFormat before anything is written.
	Save(ctx context.Context, upload Upload, dir string) (Result, error)

	// Remove deletes a previously saved image. Missing files are not an error.
	Remove(ctx context.Context, path string) error
}

// Check validates size and extension and returns the normalized extension.
func Check(upload Upload, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if upload.Reader == nil {
		return "", ErrEmptyUpload
	}
	if upload.Size > maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, upload.Size, maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, upload.Filename)
	}
	return ext, nil
}

// ContentType returns the MIME type for an accepted extension.
func ContentType(ext string) string {
	return allowedExtensions[strings.ToLower(ext)]
}

func newFileName(ext string) string {
	return uuid.NewString() + ext
}

// readLimited reads at most maxBytes, failing with ErrTooLarge when the
// stream is longer than the declared size suggested.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, maxBytes)
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	return data, nil
}

// New builds the Store selected by cfg.Backend.
func New(ctx context.Context, cfg config.UploadConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.MaxBytes, logger), nil
	case "s3":
		return NewS3Store(ctx, cfg.S3, cfg.MaxBytes, logger)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Backend)
	}
}
