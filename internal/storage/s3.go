package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"jobmatrix/internal/config"
)

// S3 stores files in an S3 compatible bucket.
type S3 struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewS3 initialises the client and makes sure the bucket exists.
func NewS3(cfg config.S3Config) (*S3, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &S3{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: PublicBucketURL(cfg),
	}, nil
}

// PublicBucketURL returns the prefix objects are served from.
func PublicBucketURL(cfg config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Put uploads r as key.
func (s *S3) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, opts); err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Exists reports whether key is present in the bucket.
func (s *S3) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if IsNoSuchKey(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat object %q: %w", key, err)
}

// URL builds the public object URL. Keys that already embed the bucket host
// only need a scheme.
func (s *S3) URL(key string) string {
	return objectURL(s.publicURL, s.bucket, key)
}

func objectURL(publicURL, bucket, key string) string {
	key = strings.TrimLeft(key, "/")
	if strings.HasPrefix(key, bucket+".s3.") {
		return "https://" + key
	}
	return publicURL + "/" + key
}

// IsNoSuchKey reports whether err means the object is missing.
func IsNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.StatusCode == 404
	}
	return false
}
