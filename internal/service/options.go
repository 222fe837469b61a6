package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
)

// Option customizes a service.
type Option func(*options)

type options struct {
	now     func() time.Time
	metrics *metrics.Metrics
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now, for tests that depend on the current day.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMetrics records business events on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Photos configures where an entity's images go.
type Photos struct {
	Images imagestore.Store
	// Dir is the directory (or key prefix) new images are stored under.
	Dir string
	// DefaultPath is assigned to new records and never removed.
	DefaultPath string
}

// photoManager stores and discards the images of one entity type.
type photoManager struct {
	Photos
	entity  string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func newPhotoManager(p Photos, entity string, m *metrics.Metrics, log *slog.Logger) photoManager {
	return photoManager{Photos: p, entity: entity, metrics: m, logger: log}
}

func (p photoManager) save(ctx context.Context, upload imagestore.Upload) (string, error) {
	if p.Images == nil {
		return "", errors.New("no image store configured")
	}
	res, err := p.Images.Save(ctx, upload, p.Dir)
	switch {
	case errors.Is(err, imagestore.ErrTooLarge),
		errors.Is(err, imagestore.ErrUnsupportedFormat),
		errors.Is(err, imagestore.ErrEmptyUpload):
		p.metrics.Upload(p.entity, metrics.UploadRejected)
		return "", err
	case err != nil:
		p.metrics.Upload(p.entity, metrics.UploadFailed)
		return "", fmt.Errorf("failed to store %s image: %w", p.entity, err)
	}
	p.metrics.Upload(p.entity, metrics.UploadStored)
	return res.Path, nil
}

// discard removes path unless it is empty or the default image. Failures are
// logged only; the database row is already consistent.
func (p photoManager) discard(ctx context.Context, path string) {
	if p.Images == nil || path == "" || path == p.DefaultPath {
		return
	}
	if err := p.Images.Remove(ctx, path); err != nil {
		logger.FromContextOrDefault(ctx, p.logger).Warn("failed to remove old image",
			slog.String("entity", p.entity),
			slog.String("path", path),
			slog.Any("error", err))
	}
}
