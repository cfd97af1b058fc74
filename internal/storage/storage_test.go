package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"work_exchange/configs"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) PhotoStorage {
	t.Helper()

	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)

	return NewPhotoStorage(client, http.DefaultClient, configs.Storage{
		PassportBucket: "passports",
		MediaBucket:    "media",
	})
}

func TestObjectKey_KeepsExtension(t *testing.T) {
	key := objectKey("https://api.telegram.org/file/bot123/photos/file_7.PNG")

	assert.True(t, strings.HasSuffix(key, ".png"))
	_, err := uuid.Parse(strings.TrimSuffix(key, ".png"))
	assert.NoError(t, err)
}

func TestObjectKey_DefaultsToJPEG(t *testing.T) {
	key := objectKey("https://example.com/photo")

	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, objectKey("https://example.com/photo"))
}

func TestSavePassport_DownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestStorage(t).SavePassport(context.Background(), server.URL+"/photo.jpg")

	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestPresignMedia_EmptyKey(t *testing.T) {
	_, err := newTestStorage(t).PresignMedia(context.Background(), " ")

	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestPresignMedia_SignsMediaBucket(t *testing.T) {
	link, err := newTestStorage(t).PresignMedia(context.Background(), "banner.png")

	require.NoError(t, err)
	assert.Contains(t, link, "/media/banner.png")
	assert.Contains(t, link, "X-Amz-Signature=")
}
