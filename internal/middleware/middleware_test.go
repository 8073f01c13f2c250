package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.Equal(t, "/brew", fields["path"])
	require.Equal(t, http.MethodGet, fields["method"])
}

func TestRecoveryReturns500AndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	request := logs.FilterMessage("request").All()
	require.Len(t, request, 1)
	require.EqualValues(t, http.StatusInternalServerError, request[0].ContextMap()["status"])
}

func TestResponseRecorderKeepsFirstStatus(t *testing.T) {
	t.Parallel()

	rw := NewResponseRecorder(httptest.NewRecorder())
	require.Equal(t, http.StatusOK, rw.Status())
	require.False(t, rw.WroteHeader())

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)
	require.Equal(t, http.StatusNotFound, rw.Status())
	require.True(t, rw.WroteHeader())
}

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"jig.glb": {Data: []byte("glTF")},
	}
	h := AssetsWithCache(fsys, "60")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jig.glb", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "glTF", rec.Body.String())
	require.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/jig.glb", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.glb", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Header().Get("ETag"))
}

func TestAssetsWithCacheETagFollowsChanges(t *testing.T) {
	t.Parallel()

	modTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"jig.png": {Data: []byte("v1"), ModTime: modTime},
	}
	h := AssetsWithCache(fsys, "60")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jig.png", nil))
	old := rec.Header().Get("ETag")
	require.NotEmpty(t, old)

	fsys["jig.png"] = &fstest.MapFile{Data: []byte("v2"), ModTime: modTime.Add(time.Minute)}

	req := httptest.NewRequest(http.MethodGet, "/jig.png", nil)
	req.Header.Set("If-None-Match", old)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "v2", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("ETag"))
	require.NotEqual(t, old, rec.Header().Get("ETag"))
}

func TestAssetsDirMissing(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	AssetsDir("/definitely/not/here", "60").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
