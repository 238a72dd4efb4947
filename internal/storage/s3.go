// Package storage uploads binary blobs to S3-compatible object storage and
// derives the public URL for each stored object.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jaiganesh5555/arcade/internal/config"
)

var (
	ErrBucketNotConfigured = errors.New("storage bucket is not configured")
	ErrUploadFailed        = errors.New("storage upload failed")
)

// objectPutter is the subset of the S3 client used by the uploader.
// *s3.Client satisfies it.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores objects in a single bucket and returns their public URLs.
type S3Uploader struct {
	client   objectPutter
	bucket   string
	region   string
	endpoint string
}

// NewS3Uploader builds an uploader from the application config. A custom
// endpoint switches the client to path-style addressing for MinIO-style
// deployments.
func NewS3Uploader(ctx context.Context, cfg config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}, nil
}

// ObjectKey builds a storage key for an uploaded file. The timestamp keeps
// keys browsable by upload time; the uuid prevents collisions within the same
// second.
func ObjectKey(filename string) string {
	return fmt.Sprintf("uploads/%d-%s-%s", time.Now().Unix(), uuid.New(), sanitizeFilename(filename))
}

// Upload stores the blob under the given key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if u.bucket == "" {
		return "", ErrBucketNotConfigured
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return u.publicURL(key), nil
}

// publicURL derives the object's public address: path-style against a custom
// endpoint, virtual-hosted style against AWS.
func (u *S3Uploader) publicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.endpoint, "/"), u.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, escaped)
}

// sanitizeFilename strips directory components and spaces from an uploaded
// file name before it becomes part of a storage key.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(name, " ", "_")
}
