package lake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrObjectNotFound is returned by Get for a missing key.
var ErrObjectNotFound = errors.New("lake object not found")

type S3Config struct {
	Endpoint      string
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	Secure        bool
	RequesterPays bool
}

// S3Store reads lake objects from an S3 compatible bucket.
type S3Store struct {
	client        *minio.Client
	bucket        string
	requesterPays bool
	metrics       Metrics
}

func NewS3Store(cfg S3Config, metrics Metrics) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("lake bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		requesterPays: cfg.RequesterPays,
		metrics:       metrics,
	}, nil
}

func (s *S3Store) ListPrefixes(ctx context.Context, startAfter string, limit int) (prefixes []string, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("list_prefixes", err, start)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		StartAfter: startAfter,
		MaxKeys:    limit,
	}
	if s.requesterPays {
		opts.Set("x-amz-request-payer", "requester")
	}

	prefixes = make([]string, 0, limit)
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s after %q: %w", s.bucket, startAfter, obj.Err)
		}
		prefixes = append(prefixes, obj.Key)
		if len(prefixes) == limit {
			break
		}
	}
	return prefixes, nil
}

func (s *S3Store) Get(ctx context.Context, key string) (data []byte, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("get_object", err, start)
	}()

	opts := minio.GetObjectOptions{}
	if s.requesterPays {
		opts.Set("x-amz-request-payer", "requester")
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, opts)
	if err != nil {
		return nil, s.objectErr(key, err)
	}
	defer obj.Close()

	data, err = io.ReadAll(obj)
	if err != nil {
		return nil, s.objectErr(key, err)
	}
	return data, nil
}

func (s *S3Store) objectErr(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	return fmt.Errorf("get %s: %w", key, err)
}
