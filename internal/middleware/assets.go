package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

type etagEntry struct {
	modTime time.Time
	size    int64
	etag    string
}

// AssetsWithCache serves files from fsys with Cache-Control, Vary and ETag handling.
// ETags are computed lazily and recomputed when a file's size or mtime changes.
// Requests are expected with the mount prefix already stripped.
func AssetsWithCache(fsys fs.FS, maxAge string) http.Handler {
	var (
		mu    sync.Mutex
		etags = map[string]etagEntry{}
	)
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age="+maxAge)

		var et string
		if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() && name != "" && name != "." {
			mu.Lock()
			entry, ok := etags[name]
			mu.Unlock()
			if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
				et = entry.etag
			} else if et, _ = fileETag(fsys, name); et != "" {
				mu.Lock()
				etags[name] = etagEntry{modTime: info.ModTime(), size: info.Size(), etag: et}
				mu.Unlock()
			}
		}
		if et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

// AssetsDir serves a directory on disk, or nothing when the directory is missing
func AssetsDir(dir, maxAge string) http.Handler {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return http.NotFoundHandler()
	}
	return AssetsWithCache(os.DirFS(dir), maxAge)
}

func fileETag(fsys fs.FS, name string) (string, error) {
	if name == "" || name == "." {
		return "", nil
	}
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return "", err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
