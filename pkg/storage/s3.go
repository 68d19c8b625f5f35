package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"gravecare/pkg/utils"
)

// Gateway is the object-storage contract the rest of the system consumes:
// upload bytes, get back a durable public URL; delete by that URL.
type Gateway interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (string, error)
	UploadMany(ctx context.Context, files [][]byte, contentType, folder string) ([]string, error)
	Delete(ctx context.Context, url string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type S3Config struct {
	Region string
	Key    string
	Secret string
	Bucket string
}

type s3Gateway struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Gateway(cfg S3Config) (Gateway, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.Key != "" && cfg.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	return &s3Gateway{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region),
	}, nil
}

// Upload stores the bytes under folder/<uuid>.<ext> and returns the public URL.
func (g *s3Gateway) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	key := g.buildKey(contentType, folder)

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return g.baseURL + "/" + key, nil
}

func (g *s3Gateway) UploadMany(ctx context.Context, files [][]byte, contentType, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := g.Upload(ctx, f, contentType, folder)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (g *s3Gateway) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(url, g.baseURL), "/")
	if key == "" || key == url {
		return fmt.Errorf("storage: url %q does not belong to bucket %s", url, g.bucket)
	}
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (g *s3Gateway) Exists(ctx context.Context, key string) (bool, error) {
	_, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (g *s3Gateway) buildKey(contentType, folder string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return strings.Trim(folder, "/") + "/" + uuid.New().String() + ext
}

// TypeAllowed reports whether contentType is one of the allowed mime types.
func TypeAllowed(contentType string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(contentType, a) {
			return true
		}
	}
	return false
}

// SizeAllowed reports whether a payload of n bytes fits under maxBytes.
func SizeAllowed(n int64, maxBytes int64) bool {
	return n > 0 && n <= maxBytes
}

// ValidateUpload combines the type and size checks into the sentinel errors
// controllers surface directly.
func ValidateUpload(contentType string, size int64, allowed []string, maxBytes int64) error {
	if !TypeAllowed(contentType, allowed) {
		return utils.ErrFileTypeNotAllowed
	}
	if !SizeAllowed(size, maxBytes) {
		return utils.ErrFileTooLarge
	}
	return nil
}
