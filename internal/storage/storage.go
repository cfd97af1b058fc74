package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"work_exchange/configs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var ErrEmptyKey = errors.New("object key is empty")

const defaultContentType = "image/jpeg"

// PhotoStorage keeps passport photos out of Telegram and signs links to broadcast media.
type PhotoStorage interface {
	EnsureBuckets(ctx context.Context) error
	SavePassport(ctx context.Context, sourceURL string) (string, error)
	PresignMedia(ctx context.Context, key string) (string, error)
}

type photoStorage struct {
	client     *minio.Client
	httpClient *http.Client
	config     configs.Storage
}

func NewPhotoStorage(client *minio.Client, httpClient *http.Client, config configs.Storage) PhotoStorage {
	return &photoStorage{
		client:     client,
		httpClient: httpClient,
		config:     config,
	}
}

func (s *photoStorage) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{s.config.PassportBucket, s.config.MediaBucket} {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %q: %w", bucket, err)
		}
		if exists {
			continue
		}

		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket %q: %w", bucket, err)
		}
	}

	return nil
}

// SavePassport downloads the photo behind sourceURL and stores it under a fresh key.
func (s *photoStorage) SavePassport(ctx context.Context, sourceURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", err
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("download photo: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download photo: unexpected status %d", response.StatusCode)
	}

	contentType := response.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultContentType
	}

	key := objectKey(sourceURL)

	_, err = s.client.PutObject(ctx, s.config.PassportBucket, key, response.Body, response.ContentLength, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object to s3: %w", err)
	}

	return key, nil
}

func (s *photoStorage) PresignMedia(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}

	ttl := s.config.PresignTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.config.MediaBucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get object: %w", err)
	}

	return presigned.String(), nil
}

// objectKey keeps the source extension so the stored object opens with the right viewer.
func objectKey(sourceURL string) string {
	ext := ".jpg"
	if parsed, err := url.Parse(sourceURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = strings.ToLower(e)
		}
	}

	return uuid.NewString() + ext
}
