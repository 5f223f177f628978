package objectstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace-integrations/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Store_Validation(t *testing.T) {
	_, err := NewS3Store(context.Background(), config.StorageConfig{AccessKey: "a", SecretKey: "s"}, zerolog.Nop())
	assert.ErrorContains(t, err, "bucket is required")

	_, err = NewS3Store(context.Background(), config.StorageConfig{Bucket: "b"}, zerolog.Nop())
	assert.ErrorContains(t, err, "secret key are required")

	store, err := NewS3Store(context.Background(), config.StorageConfig{
		Bucket: "labels", AccessKey: "a", SecretKey: "s", Endpoint: "localhost:9000", UsePathStyle: true,
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "labels", store.Bucket())
	assert.Equal(t, defaultPresignExpiry, store.expiry)
}

func TestS3Store_PutUploadsAndPresigns(t *testing.T) {
	var (
		mu       sync.Mutex
		gotPath  string
		gotBody  string
		gotCType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			raw, _ := io.ReadAll(r.Body)
			mu.Lock()
			gotPath, gotBody, gotCType = r.URL.Path, string(raw), r.Header.Get("Content-Type")
			mu.Unlock()
			w.Header().Set("ETag", `"abc"`)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := NewS3Store(context.Background(), config.StorageConfig{
		Endpoint:      server.URL,
		Region:        "eu-central-1",
		Bucket:        "labels",
		AccessKey:     "AKIDEXAMPLE",
		SecretKey:     "secret",
		UsePathStyle:  true,
		PresignExpiry: time.Hour,
	}, zerolog.Nop())
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "sea/1/manifest.csv", "text/csv", []byte("a,b\n"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/labels/sea/1/manifest.csv", gotPath)
	assert.Equal(t, "a,b\n", gotBody)
	assert.Equal(t, "text/csv", gotCType)

	assert.True(t, strings.HasPrefix(url, server.URL+"/labels/sea/1/manifest.csv?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

func TestS3Store_PutRejectsEmptyKey(t *testing.T) {
	store, err := NewS3Store(context.Background(), config.StorageConfig{Bucket: "b", AccessKey: "a", SecretKey: "s"}, zerolog.Nop())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "", "text/csv", nil)
	assert.Error(t, err)
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore("http://localhost:8080/")

	body := []byte("%PDF-1.4")
	url, err := store.Put(context.Background(), "labels/dhl/SIM1.pdf", "application/pdf", body)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/documents/labels/dhl/SIM1.pdf", url)

	body[0] = 'X'
	doc, ok := store.Get("labels/dhl/SIM1.pdf")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "%PDF-1.4", string(doc.Body))

	_, ok = store.Get("missing")
	assert.False(t, ok)

	_, err = store.Put(context.Background(), "", "text/plain", nil)
	assert.Error(t, err)
}
