package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/proyectozoo/zoo-api/internal/config"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
)

// objectAPI is the subset of *s3.Client used by S3Store.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store writes images to an S3-compatible bucket.
type S3Store struct {
	client   objectAPI
	bucket   string
	prefix   string
	maxBytes int64
	logger   *slog.Logger
}

var _ Store = (*S3Store)(nil)

// NewS3Store loads AWS configuration and creates an S3Store. Static credentials
// are used when both keys are set; otherwise the default credential chain applies.
func NewS3Store(ctx context.Context, cfg config.S3Config, maxBytes int64, log *slog.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Store(client, cfg.Bucket, cfg.Prefix, maxBytes, log), nil
}

func newS3Store(client objectAPI, bucket, prefix string, maxBytes int64, log *slog.Logger) *S3Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = slog.Default()
	}
	return &S3Store{
		client:   client,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		maxBytes: maxBytes,
		logger: log.With(
			slog.String("component", "image_store"),
			slog.String("backend", "s3"),
			slog.String("bucket", bucket),
		),
	}
}

// Save implements Store. The returned path is the object key.
func (s *S3Store) Save(ctx context.Context, upload Upload, dir string) (Result, error) {
	ext, err := Check(upload, s.maxBytes)
	if err != nil {
		return Result{}, err
	}
	data, err := readLimited(upload.Reader, s.maxBytes)
	if err != nil {
		return Result{}, err
	}

	key := path.Join(s.prefix, strings.Trim(dir, "/"), newFileName(ext))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ContentType(ext)),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to upload image to s3: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("image stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return Result{Path: key}, nil
}

// Remove implements Store.
func (s *S3Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from s3: %w", err)
	}
	return nil
}
