// Package storage uploads user avatars to S3-compatible object storage
// (AWS S3, Cloudflare R2, MinIO).
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"furls/dashboard/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxAvatarBytes is the largest avatar accepted.
const MaxAvatarBytes = 2 << 20

// ErrUnsupportedImage is returned for anything that is not png, jpeg, gif or webp.
var ErrUnsupportedImage = errors.New("unsupported image type")

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// AvatarStore persists an avatar image and returns its public URL.
type AvatarStore interface {
	PutAvatar(ctx context.Context, userID uint, data []byte) (string, error)
}

// Default is the configured store, nil when avatar uploads are disabled.
var Default AvatarStore

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes avatars to a single bucket.
type S3Store struct {
	client        putObjectAPI
	bucket        string
	publicBaseURL string
}

// Init builds Default from cfg. It leaves Default nil when no bucket is set.
func Init(ctx context.Context, cfg *config.Config) error {
	if !cfg.AvatarStorageEnabled() {
		Default = nil
		return nil
	}
	store, err := NewS3Store(ctx, cfg)
	if err != nil {
		return err
	}
	Default = store
	return nil
}

// NewS3Store configures an S3 client from the AVATAR_* settings. A custom
// endpoint switches to path-style addressing, which R2 and MinIO expect.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AvatarRegion),
	}
	if cfg.AvatarAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AvatarAccessKeyID, cfg.AvatarSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AvatarEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AvatarEndpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg), nil
}

func newS3Store(client putObjectAPI, cfg *config.Config) *S3Store {
	base := cfg.AvatarPublicBaseURL
	if base == "" {
		if cfg.AvatarEndpoint != "" {
			base = strings.TrimRight(cfg.AvatarEndpoint, "/") + "/" + cfg.AvatarBucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.AvatarBucket, cfg.AvatarRegion)
		}
	}
	return &S3Store{client: client, bucket: cfg.AvatarBucket, publicBaseURL: strings.TrimRight(base, "/")}
}

// PutAvatar sniffs the image type, uploads it under a fresh key and returns
// the public URL.
func (s *S3Store) PutAvatar(ctx context.Context, userID uint, data []byte) (string, error) {
	contentType, ext, err := DetectImage(data)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("avatars/%d/%s.%s", userID, uuid.New().String(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return s.publicBaseURL + "/" + key, nil
}

// DetectImage checks size and content type from the bytes themselves, not
// from what the client claimed.
func DetectImage(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrUnsupportedImage
	}
	if len(data) > MaxAvatarBytes {
		return "", "", fmt.Errorf("avatar exceeds %d bytes", MaxAvatarBytes)
	}
	contentType = http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", ErrUnsupportedImage
	}
	return contentType, ext, nil
}
