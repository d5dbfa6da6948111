package middleware

import (
	"bytes"
	cgzip "compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResponseStore is an in-memory stand-in for the Redis wrapper.
type fakeResponseStore struct {
	values map[string]string
}

func newFakeResponseStore() *fakeResponseStore {
	return &fakeResponseStore{values: make(map[string]string)}
}

func (f *fakeResponseStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return value, nil
}

func (f *fakeResponseStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeResponseStore) ClearByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.values {
		if strings.HasPrefix(key, prefix) {
			delete(f.values, key)
		}
	}
	return nil
}

func gunzipBody(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := cgzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()
	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(out)
}

func TestCacheResponseServesHitsOnCompressedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeResponseStore()
	mw := NewCacheMiddleware(store, "daybreak", time.Minute)

	handlerCalls := 0
	router := gin.New()
	router.GET("/api/tones", gzip.Gzip(gzip.DefaultCompression), mw.CacheResponse(), func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"data": []string{"classic", "gentle"}})
	})

	get := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tones", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		router.ServeHTTP(recorder, req)
		return recorder
	}

	first := get()
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, 1, handlerCalls)

	// The cached value is the plain JSON body, not the compressed stream
	require.Len(t, store.values, 1)
	for _, cached := range store.values {
		assert.True(t, json.Valid([]byte(cached)))
	}

	second := get()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, handlerCalls)
	assert.JSONEq(t, `{"data":["classic","gentle"]}`, gunzipBody(t, second.Body.Bytes()))
}

func TestCacheResponseSkipsNonGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeResponseStore()
	mw := NewCacheMiddleware(store, "daybreak", time.Minute)

	router := gin.New()
	router.POST("/api/runs", mw.CacheResponse(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": "run"})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/runs", nil))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Empty(t, store.values)
}

func TestCacheInvalidateClearsMatchingKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeResponseStore()
	store.values["daybreak:api:alarm"] = `{"data":{}}`
	store.values["daybreak:api:feed"] = `{"data":[]}`
	mw := NewCacheMiddleware(store, "daybreak", time.Minute)

	router := gin.New()
	router.PUT("/api/alarm", mw.CacheInvalidate("api:alarm*"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "saved"})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/api/alarm", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, store.values, "daybreak:api:alarm")
	assert.Contains(t, store.values, "daybreak:api:feed")
}
