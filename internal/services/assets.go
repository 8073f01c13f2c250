package services

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// AssetPaths maps document-relative model and image paths onto the URL prefix
// the asset directory is served under.
type AssetPaths struct {
	Dir    string
	Prefix string
}

// URL returns the root-relative URL for src. Absolute URLs, root-relative paths
// and fragments pass through unchanged. A path inside Dir is rewritten onto Prefix;
// any other relative path is anchored at the site root.
func (a AssetPaths) URL(src string) string {
	if src == "" || strings.HasPrefix(src, "/") || strings.HasPrefix(src, "#") {
		return src
	}
	if u, err := url.Parse(src); err != nil || u.Scheme != "" {
		return src
	}

	p := path.Clean(src)
	dir := path.Clean(filepath.ToSlash(a.Dir))
	prefix := strings.TrimRight(a.Prefix, "/")
	if a.Dir != "" && dir != "." && prefix != "" && strings.HasPrefix(p, dir+"/") {
		return prefix + "/" + strings.TrimPrefix(p, dir+"/")
	}
	return "/" + p
}
