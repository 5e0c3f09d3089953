package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"portfolio-web/internal/shared/storage/object"
)

// API is the subset of the S3 client the store calls.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store implements a read-only ObjectStore on Amazon S3.
type Store struct {
	client API
	bucket string
	prefix string
}

// New creates an S3-backed object store using the default AWS credential chain.
func New(ctx context.Context, region, bucket, prefix string) (*Store, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client API, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: strings.TrimSpace(bucket),
		prefix: normalizePrefix(prefix),
	}
}

// Path returns the s3:// URL for key.
func (s *Store) Path(storageKey string) string {
	return "s3://" + s.bucket + "/" + applyPrefix(s.prefix, toSlash(storageKey))
}

// Stat issues a HEAD request for key.
func (s *Store) Stat(ctx context.Context, storageKey string) (object.Info, error) {
	if err := ctx.Err(); err != nil {
		return object.Info{}, err
	}

	objectKey, err := s.objectKey(storageKey)
	if err != nil {
		return object.Info{}, err
	}
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return object.Info{}, s.mapError("head", objectKey, err)
	}

	return object.Info{
		Key:       storageKey,
		Path:      s.Path(storageKey),
		SizeBytes: aws.ToInt64(out.ContentLength),
		ModTime:   aws.ToTime(out.LastModified).UTC(),
	}, nil
}

// Open starts a GET for key. The body streams from S3 and must be closed.
func (s *Store) Open(ctx context.Context, storageKey string) (*object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	objectKey, err := s.objectKey(storageKey)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, s.mapError("get", objectKey, err)
	}

	return &object.Object{
		Info: object.Info{
			Key:       storageKey,
			Path:      s.Path(storageKey),
			SizeBytes: aws.ToInt64(out.ContentLength),
			ModTime:   aws.ToTime(out.LastModified).UTC(),
		},
		Body: out.Body,
	}, nil
}

func (s *Store) objectKey(storageKey string) (string, error) {
	key := toSlash(storageKey)
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%q: %w", storageKey, object.ErrInvalidKey)
		}
	}
	key = strings.Trim(key, "/")
	if key == "" || key == "." {
		return "", fmt.Errorf("%q: %w", storageKey, object.ErrInvalidKey)
	}
	return applyPrefix(s.prefix, key), nil
}

func (s *Store) mapError(op, objectKey string, err error) error {
	var noSuchKey *s3types.NoSuchKey
	var notFound *s3types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return fmt.Errorf("s3 %s bucket=%s key=%s: %w", op, s.bucket, objectKey, object.ErrNotFound)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return fmt.Errorf("s3 %s bucket=%s key=%s: %w", op, s.bucket, objectKey, object.ErrNotFound)
	}
	return fmt.Errorf("s3 %s bucket=%s key=%s: %w", op, s.bucket, objectKey, err)
}

func toSlash(key string) string {
	return strings.ReplaceAll(key, "\\", "/")
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}

var _ object.ObjectStore = (*Store)(nil)
