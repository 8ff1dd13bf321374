package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/moments-social/api-go/config"
	"github.com/moments-social/api-go/httperror"
)

// Only these image types are accepted; anything else is a 422.
var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

const maxImageSize = 500000 // bytes

// MediaStorage stores uploaded images and hands back the public
// reference persisted on the entity. Delete is best-effort cleanup.
type MediaStorage interface {
	SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// R2Storage keeps images in a Cloudflare R2 (S3-compatible) bucket.
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Storage(cfg *config.R2Config) *R2Storage {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Storage{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}
}

func (s *R2Storage) SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", httperror.ValidationFailed("invalid image format")
	}
	if file.Size > maxImageSize {
		return "", httperror.ValidationFailed("image exceeds the size limit")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded image: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("images/%s.%s", uuid.New().String(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storing image: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func (s *R2Storage) Delete(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(ref, s.publicURL+"/")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting image %s: %w", key, err)
	}
	return nil
}
